package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/identity"
	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/utils"
)

// TokenVerifier authenticates bearer tokens and checks caller roles.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*identity.Claims, error)
	RequireScanner(ctx context.Context, claims *identity.Claims) error
	RequireAdmin(ctx context.Context, claims *identity.Claims) error
}

type IdentityMiddleware struct {
	verifier TokenVerifier
}

func NewIdentityMiddleware(verifier TokenVerifier) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier}
}

// RequireScanner admits only the NFC scanner service client.
func (m *IdentityMiddleware) RequireScanner() gin.HandlerFunc {
	return m.require(m.verifier.RequireScanner)
}

// RequireAdmin admits only callers holding the admin realm role.
func (m *IdentityMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(m.verifier.RequireAdmin)
}

func (m *IdentityMiddleware) require(check func(context.Context, *identity.Claims) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := bearerToken(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(ctx, token)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if err := check(ctx, claims); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// bearerToken returns "" for a missing header so the verifier reports it.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", nil
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.NewUnauthorizedError("Invalid authorization header format")
	}
	return strings.TrimSpace(token), nil
}

// ClaimsFromContext returns the verified claims stored by the identity
// middleware, or nil on unauthenticated routes.
func ClaimsFromContext(c *gin.Context) *identity.Claims {
	v, ok := c.Get(constants.ContextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*identity.Claims)
	return claims
}
