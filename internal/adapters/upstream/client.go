// internal/adapters/upstream/client.go

// Package upstream implements the REST client for the commerce platform API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/normalize"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// Config holds upstream client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
	// ServiceToken authenticates server-to-server calls that run outside a
	// dashboard session, such as payout report generation.
	ServiceToken   string
	CommissionRate float64
}

// Client talks to the commerce platform's REST API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	serviceToken   string
	commissionRate decimal.Decimal
	logger         *slog.Logger
}

var (
	_ ports.UpstreamClient = (*Client)(nil)
	_ ports.PayoutSource   = (*Client)(nil)
)

// NewClient creates a new upstream API client
func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rate := config.CommissionRate
	if rate == 0 {
		rate = 0.15
	}

	return &Client{
		baseURL:        config.BaseURL,
		httpClient:     &http.Client{Timeout: timeout},
		serviceToken:   config.ServiceToken,
		commissionRate: decimal.NewFromFloat(rate),
		logger:         logger.With(slog.String("component", "upstream_client")),
	}
}

// Login exchanges credentials for an upstream access token.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.UpstreamCredentials, error) {
	body := map[string]string{"email": email, "password": password}

	var creds ports.UpstreamCredentials
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", "", body, &creds); err != nil {
		return nil, err
	}

	if creds.AccessToken == "" {
		return nil, fmt.Errorf("upstream login returned no access token")
	}

	return &creds, nil
}

// Logout revokes the upstream session. A 401 here is ignored: the token is
// already dead, which is the outcome we wanted.
func (c *Client) Logout(ctx context.Context, token string) error {
	err := c.do(ctx, http.MethodPost, "/v1/auth/logout", token, nil, nil)
	if err == ports.ErrUnauthorized {
		return nil
	}
	return err
}

// FetchList retrieves one page of a list resource and returns the raw JSON
// body. Normalization happens in the caller; this client does not guess at
// response shapes.
func (c *Client) FetchList(ctx context.Context, token string, req ports.ListRequest) ([]byte, error) {
	query := url.Values{}
	for k, v := range req.Query {
		query.Set(k, v)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(req.PageSize))
	}

	path := "/v1/" + req.Resource
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// FetchPayoutLines pulls a seller's orders for the period and computes their
// payout lines with the configured commission rate. Pages are fetched with the
// service token until the reported total is reached.
func (c *Client) FetchPayoutLines(ctx context.Context, sellerID string, periodStart, periodEnd time.Time) ([]domain.PayoutLine, error) {
	const pageSize = 200

	var lines []domain.PayoutLine
	for page := 1; ; page++ {
		raw, err := c.FetchList(ctx, c.serviceToken, ports.ListRequest{
			Resource: "orders",
			Query: map[string]string{
				"seller_id": sellerID,
				"from":      periodStart.Format(time.RFC3339),
				"to":        periodEnd.Format(time.RFC3339),
			},
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch orders page %d: %w", page, err)
		}

		result, err := normalize.MapToTable(raw, normalize.Options{Strict: true})
		if err != nil {
			return nil, fmt.Errorf("failed to parse orders response: %w", err)
		}
		if !result.Success {
			return nil, fmt.Errorf("upstream reported failure: %s", result.Error)
		}

		for _, row := range result.Data {
			line, err := c.payoutLineFromRow(row)
			if err != nil {
				c.logger.WarnContext(ctx, "skipping unparseable order row",
					slog.String("seller_id", sellerID),
					slog.String("error", err.Error()))
				continue
			}
			lines = append(lines, line)
		}

		if len(result.Data) < pageSize || len(lines) >= result.TotalCount {
			break
		}
	}

	return lines, nil
}

func (c *Client) payoutLineFromRow(row normalize.Row) (domain.PayoutLine, error) {
	orderID, _ := row["order_id"].(string)
	if orderID == "" {
		if id, ok := row["id"].(string); ok {
			orderID = id
		}
	}
	if orderID == "" {
		return domain.PayoutLine{}, fmt.Errorf("order row has no id")
	}

	var orderDate time.Time
	if s, ok := row["created_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, s); err == nil {
			orderDate = parsed
		}
	}

	var gross decimal.Decimal
	switch v := row["total"].(type) {
	case float64:
		gross = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return domain.PayoutLine{}, fmt.Errorf("order %s has unparseable total %q", orderID, v)
		}
		gross = parsed
	default:
		return domain.PayoutLine{}, fmt.Errorf("order %s has no total", orderID)
	}

	return domain.ComputePayoutLine(orderID, orderDate, gross, c.commissionRate)
}

// UpdatePassword changes the account password upstream.
func (c *Client) UpdatePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.do(ctx, http.MethodPut, "/v1/account/update_password", token, body, nil)
}

// do executes one request against the upstream API. A 401 maps to
// ports.ErrUnauthorized so callers can invalidate the dashboard session.
func (c *Client) do(ctx context.Context, method, path, token string, body, dest interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "upstream request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		return ports.ErrUnauthorized
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if dest != nil {
		if err := json.Unmarshal(respBody, dest); err != nil {
			return fmt.Errorf("failed to decode upstream response: %w", err)
		}
	}

	return nil
}

// APIError is a non-401 upstream failure.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
