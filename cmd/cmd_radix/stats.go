package cmd_radix

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// statsCmd shows the size and shape of the index
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show size and shape of the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := authedRequest(http.MethodGet, apiURL()+"/api/stats")
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

		var stats map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
			return err
		}

		fmt.Printf("service: %v\nsize: %v\n%v\n", stats["service"], stats["size"], stats["tree"])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
