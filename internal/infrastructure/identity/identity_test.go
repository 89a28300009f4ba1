package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlock-inc/smartlock/internal/shared/config"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

const testRealm = "smartlock"

type signingKey struct {
	kid string
	key *rsa.PrivateKey
}

func newSigningKey(t *testing.T, kid string) signingKey {
	t.Helper()
	k, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return signingKey{kid: kid, key: k}
}

func (k signingKey) jwk() map[string]string {
	return map[string]string{
		"kid": k.kid,
		"kty": "RSA",
		"use": "sig",
		"alg": "RS256",
		"n":   base64.RawURLEncoding.EncodeToString(k.key.N.Bytes()),
		"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(k.key.E)).Bytes()),
	}
}

func (k signingKey) sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = k.kid
	s, err := token.SignedString(k.key)
	require.NoError(t, err)
	return s
}

// fakeRealm serves a JWKS document for the test realm and counts fetches.
type fakeRealm struct {
	mu      sync.Mutex
	keys    []signingKey
	status  int
	fetches atomic.Int32
	server  *httptest.Server
}

func newFakeRealm(t *testing.T, keys ...signingKey) *fakeRealm {
	r := &fakeRealm{keys: keys, status: http.StatusOK}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/realms/"+testRealm+"/protocol/openid-connect/certs" {
			http.NotFound(w, req)
			return
		}
		r.fetches.Add(1)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.status != http.StatusOK {
			w.WriteHeader(r.status)
			return
		}
		set := map[string][]map[string]string{"keys": {}}
		for _, k := range r.keys {
			set["keys"] = append(set["keys"], k.jwk())
		}
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *fakeRealm) setKeys(keys ...signingKey) {
	r.mu.Lock()
	r.keys = keys
	r.mu.Unlock()
}

func (r *fakeRealm) setStatus(status int) {
	r.mu.Lock()
	r.status = status
	r.mu.Unlock()
}

func newTestVerifier(t *testing.T, url string, opts ...func(*config.IdentityConfig)) *Verifier {
	cfg := &config.IdentityConfig{
		URL:                    url,
		Realm:                  testRealm,
		ScannerClientID:        "nfc-scanner",
		AdminRole:              "admin",
		JWKSCacheTTL:           5 * time.Minute,
		JWKSMinRefreshInterval: time.Minute,
		HTTPTimeout:            2 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	v := NewVerifier(cfg, logger.NewNop())
	t.Cleanup(v.Close)
	return v
}

func scannerClaims() *Claims {
	return &Claims{
		AuthorizedParty: "nfc-scanner",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "service-account-nfc-scanner",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func adminClaims() *Claims {
	return &Claims{
		AuthorizedParty:   "smartlock-web",
		PreferredUsername: "alice",
		RealmAccess:       RealmAccess{Roles: []string{"user", "admin"}},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerify_ScannerToken(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	ctx := context.Background()

	claims, err := v.Verify(ctx, key.sign(t, scannerClaims()))
	require.NoError(t, err)
	assert.Equal(t, "nfc-scanner", claims.AuthorizedParty)
	assert.Equal(t, "service-account-nfc-scanner", claims.Principal())

	assert.NoError(t, v.RequireScanner(ctx, claims))
	assert.True(t, errors.IsForbiddenError(v.RequireAdmin(ctx, claims)))
}

func TestVerify_AdminToken(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	ctx := context.Background()

	claims, err := v.Verify(ctx, key.sign(t, adminClaims()))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Principal())

	assert.NoError(t, v.RequireAdmin(ctx, claims))
	assert.True(t, errors.IsForbiddenError(v.RequireScanner(ctx, claims)))
}

func TestVerify_Rejected(t *testing.T) {
	key := newSigningKey(t, "k1")
	impostor := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)

	expired := scannerClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := scannerClaims()
	noExpiry.ExpiresAt = nil

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, scannerClaims()).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"expired":        key.sign(t, expired),
		"no expiry":      key.sign(t, noExpiry),
		"wrong key":      impostor.sign(t, scannerClaims()),
		"unknown kid":    newSigningKey(t, "k2").sign(t, scannerClaims()),
		"hmac signature": hmacToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), token)
			assert.True(t, errors.IsUnauthorizedError(err), "got %v", err)
		})
	}
}

func TestVerify_AuthorityUnavailable(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	realm.setStatus(http.StatusInternalServerError)
	v := newTestVerifier(t, realm.server.URL)

	_, err := v.Verify(context.Background(), key.sign(t, scannerClaims()))
	assert.True(t, errors.IsServiceUnavailableError(err), "got %v", err)
}

func TestVerify_AuthorityUnreachable(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	realm.server.Close()
	v := newTestVerifier(t, realm.server.URL)

	_, err := v.Verify(context.Background(), key.sign(t, scannerClaims()))
	assert.True(t, errors.IsServiceUnavailableError(err), "got %v", err)
}

func TestVerify_CachesKeySet(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	token := key.sign(t, scannerClaims())

	for i := 0; i < 3; i++ {
		_, err := v.Verify(context.Background(), token)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), realm.fetches.Load())
}

func TestVerify_RefreshesAfterTTL(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL, func(cfg *config.IdentityConfig) {
		cfg.JWKSCacheTTL = 50 * time.Millisecond
	})
	token := key.sign(t, scannerClaims())

	_, err := v.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return realm.fetches.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	_, err = v.Verify(context.Background(), token)
	require.NoError(t, err)
}

func TestVerify_CachedKeysOutliveOutage(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	token := key.sign(t, scannerClaims())

	_, err := v.Verify(context.Background(), token)
	require.NoError(t, err)

	realm.server.Close()
	_, err = v.Verify(context.Background(), token)
	assert.NoError(t, err)
}

func TestVerify_UnknownKidRefreshesAreRateLimited(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	ctx := context.Background()

	_, err := v.Verify(ctx, key.sign(t, scannerClaims()))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		forged := signingKey{kid: fmt.Sprintf("random-%d", i), key: key.key}
		_, err := v.Verify(ctx, forged.sign(t, scannerClaims()))
		assert.True(t, errors.IsUnauthorizedError(err), "got %v", err)
	}

	// initial fetch plus a single unknown-kid refresh
	assert.Equal(t, int32(2), realm.fetches.Load())
}

func TestVerify_KeyRotation(t *testing.T) {
	oldKey := newSigningKey(t, "k1")
	newKey := newSigningKey(t, "k2")
	realm := newFakeRealm(t, oldKey)
	v := newTestVerifier(t, realm.server.URL)

	_, err := v.Verify(context.Background(), oldKey.sign(t, scannerClaims()))
	require.NoError(t, err)

	realm.setKeys(oldKey, newKey)
	_, err = v.Verify(context.Background(), newKey.sign(t, scannerClaims()))
	require.NoError(t, err)
	assert.Equal(t, int32(2), realm.fetches.Load())
}

func TestVerify_ConcurrentFirstUseFetchesOnce(t *testing.T) {
	key := newSigningKey(t, "k1")
	realm := newFakeRealm(t, key)
	v := newTestVerifier(t, realm.server.URL)
	token := key.sign(t, scannerClaims())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := v.Verify(context.Background(), token)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), realm.fetches.Load())
}

func TestRequire_NilClaims(t *testing.T) {
	v := newTestVerifier(t, "http://127.0.0.1:1")
	assert.True(t, errors.IsForbiddenError(v.RequireScanner(context.Background(), nil)))
	assert.True(t, errors.IsForbiddenError(v.RequireAdmin(context.Background(), nil)))
}
