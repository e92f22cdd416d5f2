package opentok

import (
	"fmt"

	"github.com/streamsign/opentok-go/pkg/jwtx"
)

// ErrEncoding reports that a project assertion could not be built. It is a
// configuration defect (malformed key material), never transient, and is
// not retried. Re-exported from jwtx so callers only need this package for
// errors.Is checks.
var ErrEncoding = jwtx.ErrEncoding

// BadRequestError is a 4xx response from the platform: the request or the
// credentials it carried were rejected.
type BadRequestError struct {
	StatusCode int
	Body       string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("opentok: bad request (HTTP %d): %s", e.StatusCode, e.Body)
}

// ServerError is a 5xx response from the platform.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("opentok: server error (HTTP %d): %s", e.StatusCode, e.Body)
}

// UnexpectedResponseError reports a response the SDK could not interpret: an
// undecodable body, a status outside the documented ranges, or a
// session-create response without exactly one session.
type UnexpectedResponseError struct {
	Body string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("opentok: unexpected response: %s", e.Body)
}

// errorFromResponse maps a non-2xx response into a typed error.
func errorFromResponse(statusCode int, body []byte) error {
	switch {
	case statusCode >= 400 && statusCode <= 499:
		return &BadRequestError{StatusCode: statusCode, Body: string(body)}
	case statusCode >= 500 && statusCode <= 599:
		return &ServerError{StatusCode: statusCode, Body: string(body)}
	default:
		return &UnexpectedResponseError{
			Body: fmt.Sprintf("HTTP %d: %s", statusCode, string(body)),
		}
	}
}
