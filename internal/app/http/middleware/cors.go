package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var allowedHeaders = []string{
	"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
	"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
	"Origin", RequestIDHeader,
}

// CORS applies the site's origin allow-list to every route. Requests
// from an origin outside the list are rejected with 403; requests with
// no Origin header pass through.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:              origins,
		AllowMethods:              []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowHeaders:              allowedHeaders,
		ExposeHeaders:             []string{"Content-Length", RequestIDHeader},
		AllowCredentials:          true,
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	})
}
