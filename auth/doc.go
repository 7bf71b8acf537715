/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, attempt)

CheckPassword returns ErrInvalidCredentials on mismatch. Handlers
surface the same generic failure for an unknown email and a wrong
password so login does not leak which emails are registered.

# Session Tokens

Sessions are HS256 JWTs signed with the configured secret:

	token, err := auth.NewSessionToken(userID, email, secret, ttl)
	userID, email, err := auth.ParseSessionToken(token, secret)

The JWT subject is the generated user ID, which is the ownership
identity for every record operation. The email claim is informational.
Expired, malformed, or wrongly signed tokens all parse as
ErrInvalidToken.

Tokens are delivered both in the login/register response body and as
an HttpOnly cookie named by SessionCookie.
*/
package auth
