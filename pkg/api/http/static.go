package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticHandler serves files from the static root with standard file-server
// semantics. The root is an explicit parameter on the server; the process
// working directory is never changed.
func (s *Server) staticHandler() gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(s.staticRoot))

	return func(c *gin.Context) {
		// http.FileServer answers ".../index.html" with a redirect to the
		// directory; rewrite the path so the file is served directly.
		if strings.HasSuffix(c.Request.URL.Path, "/index.html") {
			c.Request.URL.Path = strings.TrimSuffix(c.Request.URL.Path, "index.html")
		}

		fileServer.ServeHTTP(c.Writer, c.Request)

		s.metrics.RecordStaticRequest(c.Writer.Status())
	}
}
