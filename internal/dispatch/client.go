package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Client talks to the assistant gateway. One POST per dispatch, no
// automatic retry.
type Client struct {
	baseURL string
	httpCli *http.Client
}

func NewClient(baseURL string, httpCli *http.Client) *Client {
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCli: httpCli,
	}
}

// NewThreadID builds a thread id unique per dispatch: time-derived so
// ids are monotonic, with a random suffix so no two in-flight
// dispatches ever share one.
func NewThreadID() string {
	return "session_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + uuid.NewString()[:8]
}

type gatewayRequest struct {
	UserInput string  `json:"user_input"`
	UserID    *string `json:"user_id"`
	ThreadID  string  `json:"thread_id"`
	Language  string  `json:"language"`
}

type gatewayResponse struct {
	Response       string             `json:"response"`
	AccountBalance *float64           `json:"account_balance"`
	Transactions   []bank.Transaction `json:"transaction_history"`
	Error          string             `json:"error"`
}

func (c *Client) Dispatch(ctx context.Context, q Query) Result {
	payload, err := json.Marshal(gatewayRequest{
		UserInput: q.Text,
		UserID:    q.UserID,
		ThreadID:  q.ThreadID,
		Language:  string(q.Language),
	})
	if err != nil {
		return failure(fmt.Sprintf("encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/voice-banking", bytes.NewReader(payload))
	if err != nil {
		return failure(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return failure(fmt.Sprintf("gateway unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failure(fmt.Sprintf("gateway status %d", resp.StatusCode))
	}

	var parsed gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return failure(fmt.Sprintf("malformed response: %v", err))
	}
	if parsed.Response == "" {
		return failure("empty response")
	}

	return Result{
		Ok:             true,
		Response:       parsed.Response,
		AccountBalance: parsed.AccountBalance,
		Transactions:   parsed.Transactions,
	}
}

func failure(reason string) Result {
	return Result{Ok: false, Reason: reason}
}
