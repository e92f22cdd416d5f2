package opentok

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/streamsign/opentok-go/pkg/cryptox"
)

// SessionTokenTTL is the validity window of a client session token.
const SessionTokenTTL = 24 * time.Hour

// tokenPrefix marks the token format version understood by the platform.
const tokenPrefix = "T1=="

// TokenData is the claim set embedded in a client session token: which
// session may be joined, with which role, and for how long. One instance is
// built per token and discarded after signing.
type TokenData struct {
	SessionID  string
	CreateTime int64
	ExpireTime int64
	Nonce      uint64
	Role       Role
}

// NewTokenData builds token data for the given session and role at the
// given instant. Time and nonce are explicit inputs so tests can pin them;
// production callers go through GenerateToken which draws fresh values.
func NewTokenData(sessionID string, role Role, now time.Time, nonce uint64) TokenData {
	return TokenData{
		SessionID:  sessionID,
		CreateTime: now.Unix(),
		ExpireTime: now.Add(SessionTokenTTL).Unix(),
		Nonce:      nonce,
		Role:       role,
	}
}

// query renders the fixed-order serialization the signature is computed
// over. The field order and byte layout are a wire contract with the
// platform's verifier and must not change.
func (d TokenData) query() string {
	return fmt.Sprintf(
		"session_id=%s&create_time=%d&expire_time=%d&nonce=%d&role=%s",
		d.SessionID, d.CreateTime, d.ExpireTime, d.Nonce, d.Role,
	)
}

// Sign produces the bearer token for the given project credentials:
// HMAC-SHA1 over the serialized data, wrapped with the partner ID and
// signature, base64-encoded and prefixed with the format marker. The
// secret acts only as the signing key and never appears in the output.
func (d TokenData) Sign(apiKey, apiSecret string) string {
	query := d.query()
	sig := cryptox.HMACSHA1Hex([]byte(apiSecret), []byte(query))
	inner := fmt.Sprintf("partner_id=%s&sig=%s:%s", apiKey, sig, query)
	return tokenPrefix + base64.StdEncoding.EncodeToString([]byte(inner))
}

// GenerateToken mints a client session token granting entry to sessionID
// with the permissions of role. The token is valid for 24 hours and is
// handed to the end-user client as-is; no further processing is required.
//
// The session ID is trusted to be one previously issued for this project;
// the platform, not the SDK, rejects tokens for foreign sessions.
func (ot *OpenTok) GenerateToken(sessionID string, role Role) string {
	return NewTokenData(sessionID, role, time.Now(), cryptox.Nonce()).Sign(ot.apiKey, ot.apiSecret)
}
