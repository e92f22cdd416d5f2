package opentok

import (
	"context"
	"fmt"
	"net/http"
)

// GetStreamInfo returns information about a single stream in a session.
func (ot *OpenTok) GetStreamInfo(ctx context.Context, sessionID, streamID string) (*StreamInfo, error) {
	path := fmt.Sprintf("/v2/project/%s/session/%s/stream/%s", ot.apiKey, sessionID, streamID)

	resp, err := ot.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var info StreamInfo
	if err := decodeJSON(resp, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
