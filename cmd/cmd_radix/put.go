package cmd_radix

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// putCmd stores a value under a key
var putCmd = &cobra.Command{
	Use:   "put <key> <json-value>",
	Short: "Store a value under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := loadToken()
		if err != nil {
			return fmt.Errorf("login required via `store login`")
		}

		req, err := http.NewRequest(http.MethodPut,
			apiURL()+"/api/keys/"+args[0], bytes.NewReader([]byte(args[1])))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case 201:
			fmt.Printf("✅ stored %q\n", args[0])
			return nil
		case 409:
			return fmt.Errorf("key %q already exists", args[0])
		default:
			return fmt.Errorf("error: %s", resp.Status)
		}
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
}
