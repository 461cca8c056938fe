// Package oracle implements the live-count contract over HTTP. The
// registry exposes its current total purchase-order count; this client
// asks once, under the caller's context, and reports the integer or a
// typed error. It never supplies row data — the count exists only to
// size the gap between what was scraped and what is live.
package oracle

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/validate"
)

// maxResponseBytes caps how much of the oracle response is read. A count
// endpoint answering with megabytes is broken, not large.
const maxResponseBytes = 1 << 20

// Client fetches the live purchase-order count from an HTTP endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for the given count endpoint.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: constants.OracleTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CountFunc adapts the client to the validate.CountFunc contract.
func (c *Client) CountFunc() validate.CountFunc {
	return c.Count
}

// Count performs a single GET and parses the total. Accepted response
// shapes: a bare integer body, or a JSON object carrying a "total" or
// "count" field. No retries — the validator treats any failure as
// advisory.
func (c *Client) Count(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, errors.WrapOracle(c.url, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.WrapOracle(c.url, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, &errors.OracleError{
			Endpoint:   c.url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, errors.WrapOracle(c.url, resp.StatusCode, err)
	}
	return parseCount(c.url, body)
}

// countPayload covers the JSON shapes the registry has answered with.
type countPayload struct {
	Total *int `json:"total"`
	Count *int `json:"count"`
}

func parseCount(endpoint string, body []byte) (int, error) {
	text := strings.TrimSpace(string(body))
	if n, err := strconv.Atoi(text); err == nil {
		return validCount(endpoint, n)
	}

	var payload countPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, &errors.OracleError{
			Endpoint: endpoint,
			Message:  "unparsable count response: " + truncate(text, 120),
		}
	}
	switch {
	case payload.Total != nil:
		return validCount(endpoint, *payload.Total)
	case payload.Count != nil:
		return validCount(endpoint, *payload.Count)
	}
	return 0, &errors.OracleError{
		Endpoint: endpoint,
		Message:  "response carries neither total nor count",
	}
}

func validCount(endpoint string, n int) (int, error) {
	if n < 0 {
		return 0, &errors.OracleError{
			Endpoint: endpoint,
			Message:  "negative count " + strconv.Itoa(n),
		}
	}
	return n, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
