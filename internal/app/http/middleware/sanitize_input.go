package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeJSONStrings strips markup from the top-level string fields of
// a JSON object body. Anything that is not a JSON object is left for
// the handler to judge.
func SanitizeJSONStrings() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if c.Request.Body == nil {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid body"})
			return
		}

		var body map[string]any
		if err := json.Unmarshal(buf, &body); err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		for k, v := range body {
			if s, ok := v.(string); ok {
				body[k] = CleanString(s)
			}
		}

		clean, err := json.Marshal(body)
		if err != nil {
			clean = buf
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))

		c.Next()
	}
}

// CleanString drops all markup. Entities are decoded so "Tom & Jerry"
// survives as typed, and the pass repeats until stable so an encoded tag
// like "&lt;b&gt;" cannot come back out as "<b>". Values still reach
// plain-text places such as subject lines, so the result must be free of
// tags on its own.
func CleanString(s string) string {
	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			break
		}
		s = next
	}
	return s
}

const maxCleanPasses = 8
