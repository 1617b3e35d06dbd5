package radix_api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/servs/s_radix/radix_cfg"
	"github.com/rskv-p/radix/servs/s_radix/radix_serv"
)

// NewRouter builds the HTTP API router around a service.
func NewRouter(serv *radix_serv.Service) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Public endpoints
	r.Post("/auth/login", HandleLogin(radix_cfg.C())) // Login

	// Protected API endpoints
	r.Group(func(r chi.Router) {
		r.Use(JWTMiddleware(""))

		r.Route("/api", func(r chi.Router) {
			r.Get("/keys", handleList(serv))              // List all entries
			r.Get("/keys/*", handleGet(serv))             // Read one entry
			r.Put("/keys/*", handlePut(serv))             // Insert an entry
			r.Delete("/keys/*", handleDelete(serv))       // Remove an entry
			r.Get("/match/prefix/*", handlePrefix(serv))  // Keys under a prefix
			r.Get("/match/greedy/*", handleGreedy(serv))  // Greedy subtree
			r.Get("/match/longest/*", handleLongest(serv)) // Longest stored prefix
			r.Get("/stats", handleStats(serv))            // Size and tree dump
		})
	})

	// Protected WebSocket watch feed
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		JWTMiddleware("")(http.HandlerFunc(HandleWS(serv))).ServeHTTP(w, r)
	})

	return r
}

// ServeREST starts the HTTP API server.
func ServeREST(addr string, serv *radix_serv.Service) error {
	// Initialize JWT key for authentication
	InitAuth()

	log := x_log.New("api")
	log.Info().Str("addr", addr).Msg("REST API listening")
	return http.ListenAndServe(addr, NewRouter(serv))
}
