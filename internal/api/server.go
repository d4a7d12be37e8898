package api

import (
	"net/http"
	"time"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/server"
)

const readHeaderTimeout = 10 * time.Second

// NewServer wraps handler in an http.Server configured from cfg.
func NewServer(cfg *server.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
