/*
Package opentok provides a server-side SDK for the OpenTok real-time
communication platform.

# Overview

An OpenTok client owns a project's API key and secret and exposes the three
server-side operations an application backend needs: creating sessions,
minting client session tokens, and querying stream information.

	ot := opentok.New(apiKey, apiSecret)

	sessionID, err := ot.CreateSession(ctx, opentok.SessionOptions{})
	if err != nil {
		return err
	}

	token := ot.GenerateToken(sessionID, opentok.RolePublisher)

The session ID and token are handed to client applications, which use them
to join the session with the permissions of the embedded role.

# Authentication

Every management-API call is authenticated with a short-lived signed
assertion placed in the X-OPENTOK-AUTH header. Assertions are minted fresh
per request (3-minute validity, random nonce) by the jwtx package; the SDK
never caches them. The API secret is used exclusively as signing key
material: it is not transmitted, logged, or embedded in any token.

# Client session tokens

GenerateToken produces the long-lived (24-hour) role-scoped credential a
client presents when connecting:

	token := ot.GenerateToken(sessionID, opentok.RoleModerator)

Tokens are signed with HMAC-SHA1 over a fixed-order serialization of the
token data; the exact byte layout is a wire contract with the platform's
verifier and is covered by TokenData.

# Errors

HTTP failures map to typed errors: *BadRequestError for 4xx responses,
*ServerError for 5xx, and *UnexpectedResponseError for responses the SDK
cannot interpret (including a session-create response that does not contain
exactly one session). Assertion signing failures surface jwtx.ErrEncoding
and indicate a configuration defect, not a transient condition.

	sessionID, err := ot.CreateSession(ctx, opts)
	var badReq *opentok.BadRequestError
	if errors.As(err, &badReq) {
		// credentials or request parameters rejected by the platform
	}

# Concurrency

The client is safe for concurrent use. Credentials are immutable for the
client's lifetime and both token builders are pure functions of their
inputs plus the clock and a random nonce, so no synchronization is needed.
*/
package opentok
