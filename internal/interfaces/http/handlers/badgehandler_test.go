package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgedto "github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/identity"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers/testutil"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

func newTestBadgeHandler() (*BadgeHandler, *mockScanCardUC, *mockListPendingCardsUC, *mockAssignCardUC) {
	scan := &mockScanCardUC{}
	list := &mockListPendingCardsUC{}
	assign := &mockAssignCardUC{}
	return NewBadgeHandler(scan, list, assign, testutil.NewMockLogger()), scan, list, assign
}

func TestScanCard_Created(t *testing.T) {
	h, scan, _, _ := newTestBadgeHandler()
	scan.result = &badgedto.ScanResultDTO{Success: true, Message: badgedto.ScanAcceptedMessage, CardID: "ABC123"}

	c, w := testutil.NewTestContext(http.MethodPost, "/badge/scan", map[string]string{"card_id": "ABC123"})
	testutil.SetClaims(c, &identity.Claims{AuthorizedParty: "nfc-scanner"})
	h.ScanCard(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Card registered, awaiting admin assignment","card_id":"ABC123"}`, w.Body.String())
	assert.Equal(t, "ABC123", scan.got.CardID)
	assert.Equal(t, "nfc-scanner", scan.got.ScannedBy)
}

func TestScanCard_AlreadyRegistered(t *testing.T) {
	h, scan, _, _ := newTestBadgeHandler()
	scan.err = errors.NewConflictError("Card already registered (status: assigned)")

	c, w := testutil.NewTestContext(http.MethodPost, "/badge/scan", map[string]string{"card_id": "ABC123"})
	h.ScanCard(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Error.Message, "assigned")
}

func TestScanCard_MissingCardID(t *testing.T) {
	h, _, _, _ := newTestBadgeHandler()

	c, w := testutil.NewRawTestContext(http.MethodPost, "/badge/scan", `{}`)
	h.ScanCard(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListPendingCards(t *testing.T) {
	h, _, list, _ := newTestBadgeHandler()
	list.result = []*badgedto.PendingCardDTO{
		{ID: 2, CardID: "B", ScannedAt: time.Now().UTC(), Status: "pending"},
		{ID: 1, CardID: "A", ScannedAt: time.Now().UTC().Add(-time.Minute), Status: "pending"},
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/badge/pending", nil)
	h.ListPendingCards(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var cards []badgedto.PendingCardDTO
	require.NoError(t, json.Unmarshal(resp.Data, &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "B", cards[0].CardID)
}

func TestAssignCard(t *testing.T) {
	h, _, _, assign := newTestBadgeHandler()
	assign.result = &badgedto.PendingCardDTO{ID: 1, CardID: "ABC123", Status: "assigned"}

	c, w := testutil.NewTestContext(http.MethodPatch, "/badge/ABC123/assign", nil)
	testutil.SetURLParam(c, "card_id", "ABC123")
	testutil.SetClaims(c, &identity.Claims{PreferredUsername: "alice"})
	h.AssignCard(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ABC123", assign.got.CardID)
	assert.Equal(t, "alice", assign.got.AssignedBy)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var card badgedto.PendingCardDTO
	require.NoError(t, json.Unmarshal(resp.Data, &card))
	assert.Equal(t, "assigned", card.Status)
}

func TestAssignCard_NotFound(t *testing.T) {
	h, _, _, assign := newTestBadgeHandler()
	assign.err = errors.NewNotFoundError("Card not found")

	c, w := testutil.NewTestContext(http.MethodPatch, "/badge/NOPE/assign", nil)
	testutil.SetURLParam(c, "card_id", "NOPE")
	h.AssignCard(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
