package handlers

import (
	"log"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// SessionMiddleware resolves the active identity from the durable session
// slot and attaches it to the request context. A missing or unreadable
// session means an anonymous request, never a failure.
func SessionMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Current(c.Request.Context())
		if err != nil {
			log.Printf("[session][middleware] failed to resolve identity: %v", err)
		} else if user != nil {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	u, ok := v.(*entities.User)
	if !ok {
		return nil
	}
	return u
}
