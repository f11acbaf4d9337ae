// Package access talks to the remote verification endpoint. The service is a
// boolean gate with a message; its internals are not our concern. Revocation
// checks fail open on network trouble: availability beats strict enforcement
// for a single-user tool.
package access

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the verify response.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type revokeResult struct {
	Revoked bool `json:"revoked"`
}

// Gate is the verification endpoint client.
type Gate struct {
	URL    string
	Client *http.Client
}

// NewGate builds a client for the endpoint with a sane timeout.
func NewGate(url string) *Gate {
	return &Gate{URL: url, Client: &http.Client{Timeout: 15 * time.Second}}
}

// Verify submits name and code. A transport or decode fault comes back as an
// error; the caller surfaces a connection message and leaves retry to the
// user.
func (g *Gate) Verify(ctx context.Context, code, givenName, lastName string) (*Result, error) {
	body := map[string]string{
		"action":    "verify",
		"code":      strings.ToUpper(strings.TrimSpace(code)),
		"givenName": strings.TrimSpace(givenName),
		"lastName":  strings.TrimSpace(lastName),
	}
	var out Result
	if err := g.post(ctx, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckRevoke asks whether the code has been revoked. Callers treat an error
// as "not revoked".
func (g *Gate) CheckRevoke(ctx context.Context, code string) (bool, error) {
	body := map[string]string{"action": "checkRevoke", "code": code}
	var out revokeResult
	if err := g.post(ctx, body, &out); err != nil {
		return false, err
	}
	return out.Revoked, nil
}

func (g *Gate) post(ctx context.Context, body map[string]string, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("access: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("access: build request: %w", err)
	}
	// The endpoint expects the JSON body under a plain text content type.
	req.Header.Set("Content-Type", "text/plain")

	c := g.Client
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("access: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("access: read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("access: decode response: %w", err)
	}
	return nil
}
