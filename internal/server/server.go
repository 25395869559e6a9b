// Package server exposes the stored schedule over a small JSON API.
package server

import (
	"net/http"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/storage"
)

type Server struct {
	DB       *storage.DB
	Username string
	Password string
}

func New(db *storage.DB, user, pass string) *Server {
	return &Server{
		DB:       db,
		Username: user,
		Password: pass,
	}
}

// Handler builds the route table. Split from Start so tests can drive
// the mux through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/schedule", s.basicAuth(s.handleSchedule))
	mux.HandleFunc("GET /api/schedule/{day}", s.basicAuth(s.handleScheduleDay))
	mux.HandleFunc("GET /api/search", s.basicAuth(s.handleSearch))
	mux.HandleFunc("GET /api/now", s.basicAuth(s.handleNow))
	mux.HandleFunc("GET /api/subscriptions", s.basicAuth(s.handleSubscriptions))

	return mux
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
