package cmd_radix

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// delCmd removes the entry stored under a key
var delCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Remove the entry stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := authedRequest(http.MethodDelete, apiURL()+"/api/keys/"+args[0])
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case 204:
			fmt.Printf("✅ removed %q\n", args[0])
			return nil
		case 404:
			return fmt.Errorf("key %q not found", args[0])
		default:
			return fmt.Errorf("error: %s", resp.Status)
		}
	},
}

func init() {
	RootCmd.AddCommand(delCmd)
}
