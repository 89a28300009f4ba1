package identity

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of a Keycloak access token the service reads.
type Claims struct {
	AuthorizedParty   string      `json:"azp"`
	PreferredUsername string      `json:"preferred_username,omitempty"`
	RealmAccess       RealmAccess `json:"realm_access"`
	jwt.RegisteredClaims
}

type RealmAccess struct {
	Roles []string `json:"roles"`
}

func (c *Claims) HasRealmRole(role string) bool {
	return slices.Contains(c.RealmAccess.Roles, role)
}

// Principal names the caller for logs: the username when present, else the subject.
func (c *Claims) Principal() string {
	if c.PreferredUsername != "" {
		return c.PreferredUsername
	}
	return c.Subject
}
