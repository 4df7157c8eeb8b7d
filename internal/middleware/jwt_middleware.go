package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// Context keys set by JWTMiddleware.
const (
	ContextAdminID   = "admin_id"
	ContextAdminName = "admin_name"
	ContextTokenID   = "token_id"
	ContextRole      = "role"
)

// TokenResolver turns a console token into its claims and the backend token
// it stands for.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*utils.Claims, string, error)
}

type JWTMiddleware struct {
	resolver TokenResolver
}

func NewJWTMiddleware(resolver TokenResolver) *JWTMiddleware {
	return &JWTMiddleware{resolver: resolver}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, upstream, err := m.resolver.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, utils.ErrInvalidToken) && !errors.Is(err, utils.ErrExpiredToken) {
				log.Error().Err(err).Msg("Token resolution failed")
			}
			utils.Error(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.Subject)
		c.Set(ContextAdminName, claims.Name)
		c.Set(ContextTokenID, claims.ID)
		c.Set(ContextRole, claims.Role)
		c.Request = c.Request.WithContext(schoolapi.WithToken(c.Request.Context(), upstream))
		c.Next()
	}
}
