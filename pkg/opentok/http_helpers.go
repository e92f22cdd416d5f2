package opentok

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/streamsign/opentok-go/pkg/httpx"
	"github.com/streamsign/opentok-go/pkg/idx"
	"github.com/streamsign/opentok-go/pkg/jwtx"
)

// authHeader carries the signed project assertion on every call.
const authHeader = "X-OPENTOK-AUTH"

// doRequest performs an authenticated management-API request. A fresh
// assertion is minted per call; expired or replayed assertions are rejected
// by the platform.
func (ot *OpenTok) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	assertion, err := jwtx.SignProject(ot.apiKey, ot.apiSecret)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, ot.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	traceID := idx.New().String()
	req.Header.Set(authHeader, assertion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(httpx.TraceIDHeader, traceID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := ot.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	ot.logCall(ctx, method, path, traceID, resp)
	return resp, nil
}

// logCall emits a debug record for a completed API call when a logger is
// configured.
func (ot *OpenTok) logCall(ctx context.Context, method, path, traceID string, resp *http.Response) {
	if ot.Logger == nil {
		return
	}

	ot.Logger.DebugContext(ctx, "opentok api call completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"trace_id", traceID,
	)
}

// decodeJSON decodes a 2xx JSON response into target, or maps the response
// into a typed error.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &UnexpectedResponseError{Body: string(body)}
	}

	return nil
}
