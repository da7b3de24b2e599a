package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const AUTH_TYPE_KEY contextKey = "auth_type"

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success  bool
	AuthType string
	Error    error
}

// Authenticate validates the Authorization header against the configured API
// keys. The expected header format is "APIKey <key>".
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	result := AuthResult{Success: false}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	if !strings.EqualFold(parts[0], "apikey") {
		result.Error = errors.New("unsupported authorization type: " + parts[0])
		return result
	}

	if err := validateAPIKey(parts[1], apiKeyMap); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.AuthType = "apikey"
	return result
}

// Auth returns a gin middleware for API key authentication
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := Authenticate(authHeader, cfg)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
					"details": result.Error.Error(),
				},
			})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		c.Next()
	}
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, validKeys map[string]bool) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}

	if !validKeys[apiKey] {
		return errors.New("invalid API key")
	}

	return nil
}
