package jwtx

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamsign/opentok-go/pkg/cryptox"
)

// SignProject mints a fresh project assertion for the given credentials.
// Each call draws the current time and a new nonce; reusing an assertion
// across requests weakens replay protection and risks expiry rejections.
func SignProject(apiKey, apiSecret string) (string, error) {
	claims := NewProjectClaims(apiKey, time.Now(), cryptox.Nonce())
	return SignProjectClaims(claims, apiSecret)
}

// SignProjectClaims signs an already-built claim set with HS256, keyed by
// the raw bytes of apiSecret. The secret is used only as signing key
// material and is never embedded in the output.
func SignProjectClaims(claims ProjectClaims, apiSecret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(apiSecret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return signed, nil
}
