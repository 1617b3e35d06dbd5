package cmd_radix

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/codec"
)

// watchCmd subscribes to store updates via WebSocket
var watchCmd = &cobra.Command{
	Use:   "watch [prefix]",
	Short: "Subscribe to store updates (via WebSocket)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load the authorization token
		token, err := loadToken()
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}

		// Create WebSocket connection URL
		base := strings.TrimPrefix(apiURL(), "http://")
		u := url.URL{
			Scheme:   "ws",
			Host:     base,
			Path:     "/ws",
			RawQuery: "token=" + token + "&prefix=" + url.QueryEscape(prefix),
		}

		// Establish WebSocket connection
		conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
		if err != nil {
			return fmt.Errorf("failed to connect to WebSocket: %w", err)
		}
		defer conn.Close()

		// Notify user that the connection is established
		fmt.Println("🔌 Connected. Waiting for events...")

		// Continuously read messages from the WebSocket
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return fmt.Errorf("WebSocket error: %w", err)
			}

			var msg codec.Message
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Println("Failed to parse message:", err)
				continue
			}

			fmt.Printf("📢 [%s] %s %s\n", msg.Type, msg.Key, msg.Value)
		}
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
