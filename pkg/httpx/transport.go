package httpx

import (
	"net/http"

	"github.com/streamsign/opentok-go/pkg/idx"
)

// TraceIDHeader carries the client-generated trace ID so a failed call can
// be correlated between SDK logs and platform-side support tickets.
const TraceIDHeader = "X-Request-Id"

// tracingTransport stamps every outbound request with a User-Agent and a
// fresh trace ID, without clobbering values the caller already set.
type tracingTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	clone := req.Clone(req.Context())

	if clone.Header.Get("User-Agent") == "" && t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	if clone.Header.Get(TraceIDHeader) == "" {
		clone.Header.Set(TraceIDHeader, idx.New().String())
	}

	return t.base.RoundTrip(clone)
}

// Tracing wraps base with User-Agent and trace-ID stamping. A nil base uses
// http.DefaultTransport.
func Tracing(base http.RoundTripper, userAgent string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return &tracingTransport{
		base:      base,
		userAgent: userAgent,
	}
}
