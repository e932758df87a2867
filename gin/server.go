// Package gin implements the HTTP API for the metadata service.
package gin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/brandforge/metagen"
	"github.com/brandforge/metagen/pipeline"
	"github.com/gin-gonic/gin"
)

// Server serves the metadata generation API.
type Server struct {
	Addr     string
	Pipeline *pipeline.Pipeline
	Brands   metagen.BrandService
	Logger   *slog.Logger

	router *gin.Engine
	srv    *http.Server
}

// NewServer creates a new Server with routes registered.
func NewServer(addr string, p *pipeline.Pipeline, brands metagen.BrandService, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		Addr:     addr,
		Pipeline: p,
		Brands:   brands,
		Logger:   logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	api.POST("/metadata/generate", s.handleGenerateMetadata)
	api.GET("/brands", s.handleListBrands)
	api.POST("/brands", s.handleCreateBrand)
	api.GET("/brands/:id", s.handleGetBrand)
	api.DELETE("/brands/:id", s.handleDeleteBrand)

	s.router = router
	return s
}

// Handler returns the underlying HTTP handler, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts the HTTP server and blocks until it stops.
func (s *Server) Open() error {
	s.srv = &http.Server{
		Addr:    s.Addr,
		Handler: s.router,
	}
	s.Logger.Info("http server listening", "addr", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch metagen.ErrorCode(err) {
	case metagen.EINVALID:
		return http.StatusBadRequest
	case metagen.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes a JSON error body with a status derived from the
// error code.
func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": metagen.ErrorMessage(err)})
}
