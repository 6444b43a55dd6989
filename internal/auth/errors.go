package auth

import "errors"

var (
	// ErrNotConfigured is reported when a token is presented but the
	// identity-provider settings (user pool id, client id) are missing, so
	// no verification can take place.
	ErrNotConfigured = errors.New("auth configuration missing")

	// ErrInvalidToken wraps every verification failure: bad signature,
	// expired token, wrong issuer, wrong client, wrong token use. The
	// underlying cause is preserved in the wrapped message.
	ErrInvalidToken = errors.New("token verification failed")

	// ErrUnknownSigningKey is returned when the token's key id is absent
	// from the provider's published signing keys even after a refetch.
	ErrUnknownSigningKey = errors.New("unknown token signing key")
)
