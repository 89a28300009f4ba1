// Package scanner is the NFC reader side of the badge workflow: it obtains
// a service-account token and reports scanned cards to the API.
package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/smartlock-inc/smartlock/internal/shared/config"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type ScanResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CardID  string `json:"card_id"`
}

// APIError is a non-2xx answer from the scan endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scan rejected with status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient *http.Client
	apiURL     string
	logger     logger.Interface
}

// NewClient builds a client whose requests carry a client-credentials
// token. tokenURL is used when the scanner config does not name one.
func NewClient(ctx context.Context, cfg *config.ScannerConfig, tokenURL string, log logger.Interface) *Client {
	if cfg.TokenURL != "" {
		tokenURL = cfg.TokenURL
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}

	return &Client{
		httpClient: cc.Client(ctx),
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		logger:     log.Named("scanner"),
	}
}

// Scan reports one card read to POST /badge/scan.
func (c *Client) Scan(ctx context.Context, cardID string) (*ScanResult, error) {
	body, err := json.Marshal(map[string]string{"card_id": cardID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/badge/scan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Infow("reporting card scan", "card_id", cardID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send scan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
		}
		c.logger.Warnw("card scan rejected", "card_id", cardID, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	var result ScanResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode scan response: %w", err)
	}

	c.logger.Infow("card scan accepted", "card_id", result.CardID)
	return &result, nil
}
