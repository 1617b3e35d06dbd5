package cmd_radix

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/codec"
)

// getCmd reads the value stored under a key
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := authedRequest(http.MethodGet, apiURL()+"/api/keys/"+args[0])
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == 404 {
			return fmt.Errorf("key %q not found", args[0])
		}
		if resp.StatusCode != 200 {
			return fmt.Errorf("error: %s", resp.Status)
		}

		var msg codec.Message
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			return err
		}
		fmt.Printf("%s\n", msg.Value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}
