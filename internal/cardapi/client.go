package cardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carson-networks/card-history-server/internal/transaction"
)

const (
	defaultTimeout = 10 * time.Second
	apiKeyHeader   = "x-api-key"
	maxErrorBody   = 4 << 10
)

// Client talks to the remote card service. Every request carries the static
// API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// ListCards fetches every card.
func (c *Client) ListCards(ctx context.Context) ([]Card, error) {
	var cards []Card
	if err := c.do(ctx, "list cards", http.MethodGet, "/", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// AddCard creates a card.
func (c *Client) AddCard(ctx context.Context, req AddCardRequest) error {
	return c.do(ctx, "add card", http.MethodPost, "/cards/add", req, nil)
}

// DeleteCard removes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.do(ctx, "delete card", http.MethodDelete, "/cards/"+url.PathEscape(cardID)+"/delete", nil, nil)
}

// CardInfo fetches the name and balance of a card.
func (c *Client) CardInfo(ctx context.Context, cardID string) (*CardInfo, error) {
	var info CardInfo
	if err := c.do(ctx, "card info", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Transactions fetches the transaction records of a card in the order the
// service returns them.
func (c *Client) Transactions(ctx context.Context, cardID string) ([]transaction.Record, error) {
	var resp transactionsResponse
	if err := c.do(ctx, "transactions", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/transactions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	if c == nil || c.http == nil {
		return NewConfigError("card service " + operation + ": client is nil")
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return NewConfigError("card service " + operation + ": base url is empty")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return NewConfigError("card service " + operation + ": api key is empty")
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("card service %s request error: %w", operation, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("card service %s request error: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyRequestError(ctx, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(operation, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{
			ErrorMessage: ErrorMessage{Message: "card service " + operation + " decode error: " + err.Error()},
			Err:          err,
		}
	}
	return nil
}

// statusError prefers the service's {"error": "..."} text over a generic
// message.
func statusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Error) != "" {
		return NewStatusError(resp.StatusCode, parsed.Error)
	}
	return NewStatusError(resp.StatusCode, fmt.Sprintf("card service %s failed: status=%d", operation, resp.StatusCode))
}
