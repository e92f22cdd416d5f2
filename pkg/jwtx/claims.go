// Package jwtx builds the signed project assertions that authenticate
// management-API calls. An assertion is an HS256 JWT over the project API
// key, valid for a narrow time window and carrying a random nonce in jti.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// IssuerTypeProject is the fixed "ist" claim value identifying the
	// caller as a project-level principal.
	IssuerTypeProject = "project"

	// AssertionTTL is the validity window of a project assertion. The
	// platform rejects expired assertions, so assertions are minted fresh
	// per request and never cached.
	AssertionTTL = 3 * time.Minute
)

// ProjectClaims is the claim set of a project assertion. Field types match
// the platform's verifier exactly: iat/exp are unix seconds and jti is a
// JSON number, not the string jti of RFC 7519, so this is a standalone
// claim struct rather than an embedding of jwt.RegisteredClaims.
type ProjectClaims struct {
	Issuer     string `json:"iss"`
	IssuerType string `json:"ist"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
	Nonce      uint64 `json:"jti"`
}

// NewProjectClaims builds assertion claims for apiKey at the given instant
// with the given nonce. Time and nonce are explicit inputs so tests can pin
// them; production callers go through SignProject which draws fresh values.
func NewProjectClaims(apiKey string, now time.Time, nonce uint64) ProjectClaims {
	return ProjectClaims{
		Issuer:     apiKey,
		IssuerType: IssuerTypeProject,
		IssuedAt:   now.Unix(),
		ExpiresAt:  now.Add(AssertionTTL).Unix(),
		Nonce:      nonce,
	}
}

// The jwt.Claims interface, so ProjectClaims can be signed and parsed by
// golang-jwt directly.

func (c ProjectClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c ProjectClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c ProjectClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c ProjectClaims) GetIssuer() (string, error) {
	return c.Issuer, nil
}

func (c ProjectClaims) GetSubject() (string, error) {
	return "", nil
}

func (c ProjectClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
