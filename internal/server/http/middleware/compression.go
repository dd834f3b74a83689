package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip request bodies. Any other content coding is
// rejected with 415.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		switch encoding {
		case "", "identity":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatus(http.StatusUnsupportedMediaType)
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
