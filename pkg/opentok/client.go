package opentok

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/streamsign/opentok-go/pkg/httpx"
)

// Version is reported in the User-Agent of every management-API call.
const Version = "v0.1.0"

// DefaultBaseURL is the production platform endpoint.
const DefaultBaseURL = "https://api.opentok.com"

const userAgent = "opentok-go/" + Version

// OpenTok is the top-level entry point for the server SDK. It holds a
// project's credentials for its entire lifetime and provides methods for
// creating sessions, generating client tokens and querying streams.
//
// Do not share the API secret; it is the signing key for every credential
// this client produces.
type OpenTok struct {
	// BaseURL is the platform endpoint. Override it to target a mock or
	// regional deployment.
	BaseURL string

	// HTTPClient performs the management-API calls. Replace it to adjust
	// timeouts or transport behaviour.
	HTTPClient *http.Client

	// Logger, when set, receives debug-level records for completed API
	// calls. Credentials never appear in log output.
	Logger *slog.Logger

	apiKey    string
	apiSecret string
}

// New creates an OpenTok client for the given project credentials. The
// default HTTP client applies a 10 second timeout, a client-side rate
// limit and per-request trace IDs.
func New(apiKey, apiSecret string) *OpenTok {
	return &OpenTok{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: httpx.RateLimited(httpx.Tracing(nil, userAgent), httpx.APILimit),
		},
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// APIKey returns the project API key this client was created with.
func (ot *OpenTok) APIKey() string {
	return ot.apiKey
}

// url builds a complete URL by appending the path to the base URL.
func (ot *OpenTok) url(path string) string {
	return strings.TrimSuffix(ot.BaseURL, "/") + path
}
