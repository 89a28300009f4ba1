package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers/testutil"
)

func TestHealthCheck(t *testing.T) {
	h := NewSystemHandler(&mockPinger{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	h.HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"Smartlock API","version":"0.1.0","database":"connected"}`, w.Body.String())
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	h := NewSystemHandler(&mockPinger{err: errors.New("dial tcp: connection refused")}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	h.HealthCheck(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.NotContains(t, w.Body.String(), "refused")
}

func TestWelcome(t *testing.T) {
	h := NewSystemHandler(&mockPinger{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/", nil)
	h.Welcome(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Smartlock API")
}
