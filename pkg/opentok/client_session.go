package opentok

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// CreateSession creates a new session and returns its ID. The returned
// session ID is what client tokens are minted against.
func (ot *OpenTok) CreateSession(ctx context.Context, opts SessionOptions) (string, error) {
	body := opts.values().Encode()

	resp, err := ot.doRequest(
		ctx,
		http.MethodPost,
		"/session/create",
		strings.NewReader(body),
		"application/x-www-form-urlencoded",
	)
	if err != nil {
		return "", err
	}

	var sessions []createSessionResponse
	if err := decodeJSON(resp, &sessions); err != nil {
		return "", err
	}

	// The platform returns a one-element array for a single create call.
	// Any other count means the response cannot be trusted.
	if len(sessions) != 1 {
		return "", &UnexpectedResponseError{
			Body: fmt.Sprintf("expected exactly one created session, got %d", len(sessions)),
		}
	}

	return sessions[0].SessionID, nil
}
