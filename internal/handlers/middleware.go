package handlers

import (
	"net/http"
	"strings"
	"time"

	recipes "recipes_api"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// userIdMiddleware verifies the bearer token. Every failure (missing header,
// wrong scheme, bad signature, expiry) is a 403 with the same message.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		h.rejectUnauthorized(c, "missing or malformed Authorization header", nil)
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		h.rejectUnauthorized(c, "invalid or expired token", err)
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func (h *Handler) rejectUnauthorized(c *gin.Context, reason string, err error) {
	if h.log != nil {
		h.log.Infow("auth_token_rejected", "reason", reason, "err", err, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(http.StatusForbidden, recipes.Fail(msgUnauthorized))
}

// authenticatedUserID returns the id stored by userIdMiddleware.
func authenticatedUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// requestLogger writes one line per request, similar to an access log.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"size", c.Writer.Size(),
	)
}
