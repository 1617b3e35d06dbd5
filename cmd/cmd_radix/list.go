package cmd_radix

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/codec"
)

// listCmd retrieves and displays every stored entry
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := authedRequest(http.MethodGet, apiURL()+"/api/keys")
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return fmt.Errorf("error: %s", resp.Status)
		}

		var msg codec.Message
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			return err
		}

		for _, e := range msg.Entries {
			fmt.Printf("%s\t%s\n", e.Key, e.Value)
		}
		fmt.Printf("(%d entries)\n", msg.Count)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
