// Package cryptox provides the signing primitives shared by the token
// builders: keyed digests, random nonces and secret fingerprints.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// HMACSHA1Hex computes an HMAC-SHA1 digest over message keyed by the raw
// bytes of key, rendered as lowercase hexadecimal. This is the signature
// scheme the OpenTok platform verifies client session tokens with, so the
// output format must stay exactly as-is.
func HMACSHA1Hex(key, message []byte) string {
	mac := hmac.New(sha1.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// Fingerprint returns a deterministic SHA-256 fingerprint of a secret,
// base64url-encoded without padding. Log this instead of the secret itself
// when a credential needs to be correlated across log lines.
func Fingerprint(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
