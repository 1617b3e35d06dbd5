package radix_api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rskv-p/radix/codec"
	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/servs/s_radix/radix_cfg"
	"github.com/rskv-p/radix/servs/s_radix/radix_serv"
)

// WebSocket upgrader to handle HTTP -> WebSocket connection
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins (can be improved for production)
		return true
	},
}

// HandleWS streams store mutations for a key prefix to the client.
// The prefix comes from the "prefix" query parameter; the empty prefix
// follows every key.
func HandleWS(serv *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := x_log.New("ws")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "could not open websocket connection", 500)
			return
		}
		defer conn.Close()

		prefix := r.URL.Query().Get("prefix")
		watcher := serv.Watch(prefix, radix_cfg.C().WatchBuffer)
		defer serv.Unwatch(watcher.ID)

		if user, _, ok := UserFromContext(r.Context()); ok {
			log.Info().Str("user", user).Str("prefix", prefix).Msg("watch stream opened")
		}

		// Drain client frames so close/ping handling works, and stop
		// the event loop once the peer goes away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev, ok := <-watcher.C:
				if !ok {
					return
				}
				msg := codec.NewMessage(string(ev.Op))
				msg.Key = ev.Key
				if ev.Value != nil {
					msg.Value = *ev.Value
				}
				if err := conn.WriteJSON(msg); err != nil {
					log.Warn().Err(err).Msg("watch stream write failed")
					return
				}
			case <-done:
				return
			}
		}
	}
}
