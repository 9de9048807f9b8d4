package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Check reports liveness. It has no dependencies, so a 200 only means
// the process is serving.
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:    "healthy",
		Message:   "Friendship Offers API is running!",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
