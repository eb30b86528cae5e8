package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nextgenbank/voicebank/internal/bank"
)

var ErrAuthFailed = errors.New("authentication failed")

// Authenticate logs in against the gateway's credential check.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*bank.UserProfile, string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/authenticate", bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("authenticate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, "", ErrAuthFailed
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("authenticate: status %d", resp.StatusCode)
	}

	var parsed struct {
		Success bool              `json:"success"`
		User    *bank.UserProfile `json:"user"`
		Token   string            `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, "", fmt.Errorf("decode auth response: %w", err)
	}
	if !parsed.Success || parsed.User == nil {
		return nil, "", ErrAuthFailed
	}
	return parsed.User, parsed.Token, nil
}

// Transactions hydrates the recent transaction list, used only at
// session-restore time.
func (c *Client) Transactions(ctx context.Context, userID string) ([]bank.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/transactions/"+userID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load transactions: status %d", resp.StatusCode)
	}

	var parsed struct {
		Success      bool               `json:"success"`
		Transactions []bank.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	if !parsed.Success {
		return nil, nil
	}
	return parsed.Transactions, nil
}
