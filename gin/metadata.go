package gin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brandforge/metagen"
	"github.com/gin-gonic/gin"
)

// handleGenerateMetadata runs one bulk metadata batch, streaming progress as
// Server-Sent Events. Validation and brand lookup happen before the stream
// opens so those failures surface as plain JSON errors.
func (s *Server) handleGenerateMetadata(c *gin.Context) {
	var req metagen.MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	if _, err := s.Brands.FindBrandByID(c.Request.Context(), req.BrandID); err != nil {
		abortWithError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	sw := &streamWriter{w: c.Writer, logger: s.Logger}

	// The request context doubles as the batch's cancellation token: a
	// client disconnect stops the remaining URLs.
	if _, err := s.Pipeline.Run(c.Request.Context(), &req, sw.Send); err != nil {
		sw.Send(metagen.ProgressEvent{
			Message:  fmt.Sprintf("Metadata generation failed: %s", fatalMessage(err)),
			Progress: 0,
		})
	}
}

// fatalMessage extracts a user-presentable message from a fatal batch error.
func fatalMessage(err error) string {
	var appErr *metagen.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// streamWriter emits progress events as SSE frames. Each frame is flushed
// immediately. A failed write is logged and otherwise ignored: a stalled
// client must not abort the server-side batch.
type streamWriter struct {
	w      gin.ResponseWriter
	logger *slog.Logger
}

// Send writes one frame: "event: progress" plus the JSON payload.
func (sw *streamWriter) Send(event metagen.ProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		sw.logger.Error("failed to encode progress event", "err", err)
		return
	}
	if _, err := fmt.Fprintf(sw.w, "event: progress\ndata: %s\n\n", payload); err != nil {
		sw.logger.Warn("failed to write progress frame", "err", err)
		return
	}
	sw.w.Flush()
}
