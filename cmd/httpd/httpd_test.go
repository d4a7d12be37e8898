package httpd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() common.CommandDeps {
	cfg := config.NewConfig()
	cfg.App.Environment = "test"
	cfg.Server.Address = "127.0.0.1:0"
	return common.CommandDeps{Logger: logger.NewNoOp(), Config: cfg}
}

func TestNewRouter_ServesAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, err := newRouter(testDeps())
	require.NoError(t, err)

	body := `{"html":"<nav><a class=\"nav__cart\">Cart</a></nav>","hint":{"primary_selector":"a"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/injection-points", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"selector":"a.nav__cart"`)
}

func TestShutdownServer(t *testing.T) {
	deps := testDeps()
	server, errChan := startHTTPServer(deps, http.NotFoundHandler())

	require.NoError(t, shutdownServer(deps.Logger, server, syscall.SIGTERM))
	select {
	case err := <-errChan:
		t.Fatalf("unexpected serve error: %v", err)
	default:
	}
}
