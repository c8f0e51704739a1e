package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/middleware"
	"go.uber.org/zap"
)

const maxLogBodyBytes = 4 << 10

// LogHandler records client-side reports
type LogHandler struct {
	log *zap.SugaredLogger
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(log *zap.SugaredLogger) *LogHandler {
	return &LogHandler{log: log}
}

// NotFound records a 404 seen by the client. It answers 204 whatever the body.
func (h *LogHandler) NotFound(c *gin.Context) {
	var report struct {
		Path string `json:"path"`
	}
	if c.Request.Body != nil {
		_ = json.NewDecoder(io.LimitReader(c.Request.Body, maxLogBodyBytes)).Decode(&report)
	}

	if report.Path != "" {
		h.log.Warnw("client reported 404",
			"path", report.Path,
			"client_ip", c.ClientIP(),
			"request_id", middleware.GetRequestID(c),
		)
	}

	c.Status(http.StatusNoContent)
}
