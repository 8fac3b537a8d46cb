package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snitil/bsm-discovery-backend/internal/graph"
)

// ServiceName identifies this backend in the health document
const ServiceName = "sn-itil-bsm-discovery-backend"

// HealthResponse is the fixed health check document
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body for API failures
type ErrorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	s.renderJSON(c, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
		Message: "alive",
	})
}

// handleSampleGraph returns the sample graph document, re-read from disk on
// every request so on-disk edits show up without a restart.
func (s *Server) handleSampleGraph(c *gin.Context) {
	doc, err := s.graphs.Load()
	if err != nil {
		var notFound *graph.NotFoundError
		if errors.As(err, &notFound) {
			s.metrics.RecordSampleGraphRead("missing")
			s.renderJSON(c, http.StatusNotFound, ErrorResponse{
				Error: "sample graph missing",
				Path:  notFound.Path,
			})
			return
		}

		// Malformed document: an internal failure, not a missing file.
		s.logger.Error("failed to load sample graph", zap.Error(err))
		s.metrics.RecordSampleGraphRead("error")
		s.renderJSON(c, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load sample graph",
			Path:  s.graphs.Path(),
		})
		return
	}

	s.metrics.RecordSampleGraphRead("ok")

	// The store hands back the document already indented, with its key
	// order intact; write it through without re-encoding.
	s.writeJSON(c, http.StatusOK, doc)
}

// renderJSON encodes payload pretty-printed and writes it as a JSON response.
func (s *Server) renderJSON(c *gin.Context, status int, payload interface{}) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	s.writeJSON(c, status, body)
}

// writeJSON writes a serialized JSON body with the headers every JSON
// response carries: content type, no-cache, open CORS and an exact length.
func (s *Server) writeJSON(c *gin.Context, status int, body []byte) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(status, "application/json; charset=utf-8", body)
}
