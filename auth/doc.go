// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Session Tokens

Sessions are stateless HS256 JWTs carrying the voter id as subject,
valid for SessionTTL (12 hours):

	token, err := auth.NewSessionToken(voterID, secret)
	voterID, err := auth.ParseSessionToken(token, secret)

ParseSessionToken returns ErrInvalidToken for expired, malformed, or
wrongly-signed tokens. Roles are deliberately not embedded in the token;
the session middleware reloads the voter record per request, so a role
change by the provisioning process takes effect without reissuing tokens.
*/
package auth
