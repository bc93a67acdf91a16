// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/entrypoint/dto"
)

// APIKeyHeader is the header carrying the caller's API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth returns a middleware that requires a matching API key on every
// request. An empty configured key disables the check (local development).
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Missing API key",
				Code:  string(domainerror.ErrCodeMissingAPIKey),
			})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid API key",
				Code:  string(domainerror.ErrCodeInvalidAPIKey),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
