// Package httpd implements the command that serves the selector engine over HTTP.
package httpd

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/api"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/hint"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/metrics"
	"github.com/spf13/cobra"
)

const (
	signalChannelBufferSize = 1
	errorChannelBufferSize  = 1
	defaultShutdownTimeout  = 30 * time.Second
)

// Command creates the httpd command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Serve the selector engine over HTTP",
		Long: `Starts the HTTP API and runs until SIGINT or SIGTERM.

Routes:
  GET  /health
  POST /api/v1/injection-points
  POST /api/v1/selectors/validate
  POST /api/v1/selectors/score
  POST /api/v1/selectors/clean
  GET  /api/v1/stats`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return Start()
		},
	}
}

// Start starts the HTTP server and runs until interrupted.
func Start() error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	router, err := newRouter(deps)
	if err != nil {
		return err
	}

	server, errChan := startHTTPServer(deps, router)
	return runServerUntilInterrupt(deps.Logger, server, errChan)
}

// newRouter wires the engine, hint decoder and stats into the API router.
func newRouter(deps common.CommandDeps) (*gin.Engine, error) {
	if !deps.Config.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	decoder, err := hint.NewDecoder()
	if err != nil {
		return nil, fmt.Errorf("failed to create hint decoder: %w", err)
	}

	log := deps.Logger.WithComponent("httpd")
	handler := api.NewHandler(deps.NewEngine(), decoder, metrics.NewMetrics(), log)
	return api.SetupRouter(api.RouterParams{
		Handler:          handler,
		Logger:           log,
		Server:           deps.Config.Server,
		MaxDocumentBytes: deps.Config.Engine.MaxDocumentBytes,
	}), nil
}
