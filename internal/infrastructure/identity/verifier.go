// Package identity verifies Keycloak-issued bearer tokens against the
// realm's published signing keys.
package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartlock-inc/smartlock/internal/shared/config"
	apperrors "github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type Verifier struct {
	keys            *keySet
	parser          *jwt.Parser
	scannerClientID string
	adminRole       string
	logger          logger.Interface
}

func NewVerifier(cfg *config.IdentityConfig, log logger.Interface) *Verifier {
	log = log.Named("identity")
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	return &Verifier{
		keys: newKeySet(keySetOptions{
			URL:                cfg.JWKSURL(),
			Client:             client,
			Timeout:            cfg.HTTPTimeout,
			RefreshInterval:    cfg.JWKSCacheTTL,
			MinRefreshInterval: cfg.JWKSMinRefreshInterval,
		}, log),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		scannerClientID: cfg.ScannerClientID,
		adminRole:       cfg.AdminRole,
		logger:          log,
	}
}

// Verify checks the token signature and expiry. The audience is not checked.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	log := v.logger.WithContext(ctx)

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		log.Warnw("token verification failed", "reason", "missing token")
		return nil, apperrors.NewUnauthorizedError("Missing bearer token")
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(rawToken, claims, v.keys.lookup(ctx))
	if err != nil {
		if errors.Is(err, ErrAuthorityUnavailable) {
			log.Errorw("identity provider unavailable", "error", err)
			return nil, apperrors.NewServiceUnavailableError("Identity provider unavailable")
		}
		log.Warnw("token verification failed", "error", err)
		return nil, apperrors.NewUnauthorizedError("Invalid or expired token")
	}

	log.Debugw("token verified", "principal", claims.Principal(), "azp", claims.AuthorizedParty)
	return claims, nil
}

// Close stops the background key refresh.
func (v *Verifier) Close() {
	v.keys.close()
}

// RequireScanner admits only tokens issued to the NFC scanner client.
func (v *Verifier) RequireScanner(ctx context.Context, claims *Claims) error {
	log := v.logger.WithContext(ctx)
	if claims == nil || claims.AuthorizedParty != v.scannerClientID {
		log.Warnw("scanner access denied", "azp", azp(claims))
		return apperrors.NewForbiddenError("Access restricted to the NFC scanner service")
	}
	log.Debugw("scanner access granted", "azp", claims.AuthorizedParty)
	return nil
}

// RequireAdmin admits only callers holding the admin realm role.
func (v *Verifier) RequireAdmin(ctx context.Context, claims *Claims) error {
	log := v.logger.WithContext(ctx)
	if claims == nil || !claims.HasRealmRole(v.adminRole) {
		log.Warnw("admin access denied", "azp", azp(claims))
		return apperrors.NewForbiddenError("Admin role required")
	}
	log.Debugw("admin access granted", "principal", claims.Principal())
	return nil
}

func azp(c *Claims) string {
	if c == nil {
		return ""
	}
	return c.AuthorizedParty
}
