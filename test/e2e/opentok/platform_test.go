package opentok_test

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamsign/opentok-go/pkg/cryptox"
	"github.com/streamsign/opentok-go/pkg/opentok"
)

/*
 * An in-process stand-in for the OpenTok platform. It implements the
 * verifier side of both signing schemes, so these tests prove the SDK's
 * wire formats round-trip: assertions verify under HS256 with the project
 * secret, and client tokens verify under HMAC-SHA1 with the same secret.
 */

type fakePlatform struct {
	apiKey    string
	apiSecret string
	srv       *httptest.Server

	mu sync.Mutex
	// sessions maps a session ID to the form fields it was created with.
	sessions map[string]url.Values
	// streams maps "<session>/<stream>" to the stream's info.
	streams map[string]opentok.StreamInfo
	// seenJTIs tracks assertion nonces for replay detection.
	seenJTIs map[string]bool
	counter  int
}

func newFakePlatform(apiKey, apiSecret string) *fakePlatform {
	p := &fakePlatform{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		sessions:  make(map[string]url.Values),
		streams:   make(map[string]opentok.StreamInfo),
		seenJTIs:  make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /session/create", p.handleCreateSession)
	mux.HandleFunc("GET /v2/project/{key}/session/{session}/stream/{stream}", p.handleStreamInfo)

	p.srv = httptest.NewServer(mux)
	return p
}

func (p *fakePlatform) close() { p.srv.Close() }

// client returns an SDK client pointed at the fake with the given secret,
// which may deliberately differ from the platform's.
func (p *fakePlatform) client(apiKey, apiSecret string) *opentok.OpenTok {
	ot := opentok.New(apiKey, apiSecret)
	ot.BaseURL = p.srv.URL
	return ot
}

// verifyAssertion checks the X-OPENTOK-AUTH header the way the platform
// does: HS256 signature under the project secret, project issuer type,
// a live validity window and an unseen nonce.
func (p *fakePlatform) verifyAssertion(r *http.Request) error {
	assertion := r.Header.Get("X-OPENTOK-AUTH")
	if assertion == "" {
		return fmt.Errorf("missing X-OPENTOK-AUTH header")
	}

	parsed, err := jwt.Parse(assertion, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected algorithm %q", tok.Method.Alg())
		}
		return []byte(p.apiSecret), nil
	}, jwt.WithJSONNumber(), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("assertion rejected: %w", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["iss"] != p.apiKey {
		return fmt.Errorf("issuer %v is not the project key", claims["iss"])
	}
	if claims["ist"] != "project" {
		return fmt.Errorf("issuer type %v is not project", claims["ist"])
	}

	jti := fmt.Sprint(claims["jti"])
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seenJTIs[jti] {
		return fmt.Errorf("assertion nonce %s replayed", jti)
	}
	p.seenJTIs[jti] = true

	return nil
}

func (p *fakePlatform) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if err := p.verifyAssertion(r); err != nil {
		writeError(w, http.StatusForbidden, err)
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unexpected content type %q", ct))
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p.mu.Lock()
	p.counter++
	sessionID := fmt.Sprintf("2_MX4%s~%d", p.apiKey, p.counter)
	p.sessions[sessionID] = r.PostForm
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]map[string]string{{"session_id": sessionID}})
}

func (p *fakePlatform) handleStreamInfo(w http.ResponseWriter, r *http.Request) {
	if err := p.verifyAssertion(r); err != nil {
		writeError(w, http.StatusForbidden, err)
		return
	}

	if key := r.PathValue("key"); key != p.apiKey {
		writeError(w, http.StatusForbidden, fmt.Errorf("project %q unknown", key))
		return
	}

	p.mu.Lock()
	info, ok := p.streams[r.PathValue("session")+"/"+r.PathValue("stream")]
	p.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no such stream"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(info)
}

// addStream registers a stream so GetStreamInfo can find it.
func (p *fakePlatform) addStream(sessionID string, info opentok.StreamInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.streams[sessionID+"/"+info.ID] = info
}

// sessionForm returns the creation form fields recorded for a session.
func (p *fakePlatform) sessionForm(sessionID string) (url.Values, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	form, ok := p.sessions[sessionID]
	return form, ok
}

// verifyClientToken checks a T1 bearer token exactly as the platform's
// verifier does and returns its parsed fields.
func (p *fakePlatform) verifyClientToken(t *testing.T, token string) url.Values {
	t.Helper()

	if !strings.HasPrefix(token, "T1==") {
		t.Fatalf("token %q lacks the T1== marker", token)
	}

	inner, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(token, "T1=="))
	if err != nil {
		t.Fatalf("token payload is not valid base64: %v", err)
	}

	preamble, query, found := strings.Cut(string(inner), ":")
	if !found {
		t.Fatalf("token %q has no signed query section", inner)
	}

	fields, err := url.ParseQuery(preamble)
	if err != nil {
		t.Fatalf("bad token preamble: %v", err)
	}
	if got := fields.Get("partner_id"); got != p.apiKey {
		t.Fatalf("partner_id %q is not the project key %q", got, p.apiKey)
	}

	wantSig := cryptox.HMACSHA1Hex([]byte(p.apiSecret), []byte(query))
	if !hmac.Equal([]byte(fields.Get("sig")), []byte(wantSig)) {
		t.Fatalf("token signature mismatch")
	}

	parsed, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("bad token query: %v", err)
	}

	create, err := strconv.ParseInt(parsed.Get("create_time"), 10, 64)
	if err != nil {
		t.Fatalf("bad create_time: %v", err)
	}
	expire, err := strconv.ParseInt(parsed.Get("expire_time"), 10, 64)
	if err != nil {
		t.Fatalf("bad expire_time: %v", err)
	}
	if create >= expire {
		t.Fatalf("token window inverted: create=%d expire=%d", create, expire)
	}

	p.mu.Lock()
	_, known := p.sessions[parsed.Get("session_id")]
	p.mu.Unlock()
	if !known {
		t.Fatalf("token targets unknown session %q", parsed.Get("session_id"))
	}

	return parsed
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}
