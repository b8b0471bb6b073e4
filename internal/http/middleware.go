package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"passvault/internal/domain"
	"passvault/internal/service"
)

// tokenHeader is the request header carrying the session token. One carrier
// per deployment; cookies are not supported alongside it.
const tokenHeader = "token"

const contextUserKey = "passvault.user"

// authRequired rejects requests without a valid, unrevoked token and attaches
// the resolved user to the request context. Every failure mode produces the
// same 401 body so callers cannot distinguish them.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(tokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := h.auth.Validate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				// store failure; the caller still sees the uniform 401
				h.logger.WithError(err).Error("token validation failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user attached by authRequired.
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
