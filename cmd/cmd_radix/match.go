package cmd_radix

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/codec"
)

// runMatch queries one of the match endpoints and prints the entries.
func runMatch(kind, key string) error {
	req, err := authedRequest(http.MethodGet, apiURL()+"/api/match/"+kind+"/"+key)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		fmt.Println("no match")
		return nil
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("error: %s", resp.Status)
	}

	var msg codec.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return err
	}

	if msg.Type == "entry" {
		fmt.Printf("%s\t%s\n", msg.Key, msg.Value)
		return nil
	}
	for _, e := range msg.Entries {
		fmt.Printf("%s\t%s\n", e.Key, e.Value)
	}
	return nil
}

// prefixCmd lists every entry whose key has the given prefix
var prefixCmd = &cobra.Command{
	Use:   "prefix <key>",
	Short: "List entries whose key has the given prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch("prefix", args[0])
	},
}

// greedyCmd lists the subtree reached by following the key
var greedyCmd = &cobra.Command{
	Use:   "greedy <key>",
	Short: "List the subtree reached by following the key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch("greedy", args[0])
	},
}

// longestCmd prints the entry with the longest stored prefix of the key
var longestCmd = &cobra.Command{
	Use:   "longest <key>",
	Short: "Print the entry with the longest stored prefix of the key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch("longest", args[0])
	},
}

func init() {
	RootCmd.AddCommand(prefixCmd)
	RootCmd.AddCommand(greedyCmd)
	RootCmd.AddCommand(longestCmd)
}
