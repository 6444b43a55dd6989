// Package auth verifies bearer tokens issued by the external identity
// provider and derives the caller's identity and role from their claims.
//
// Verification is delegated entirely to signature checks against the
// provider's published JWKS; no credentials are ever stored by this service.
package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kmori/techtrends/internal/config"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

const (
	bearerScheme = "Bearer"

	// accessTokenUse is the required "token_use" claim value; id and
	// refresh tokens are rejected.
	accessTokenUse = "access"

	groupsClaim = "cognito:groups"

	jwksPath = "/.well-known/jwks.json"
)

// Verifier checks request headers for a bearer token and resolves it into an
// [models.AuthResult]. Implementations must be safe for concurrent use; the
// handler package injects a stub implementation in tests.
type Verifier interface {
	Verify(ctx context.Context, header http.Header) models.AuthResult
}

// TokenVerifier is the production [Verifier]. It validates RS256 access
// tokens against the provider's published signing keys, which it fetches
// lazily and caches by key id for the lifetime of the process.
//
// The verifier is constructed once at startup and shared across requests;
// the key cache is the only mutable state and is guarded by a RWMutex.
type TokenVerifier struct {
	cfg    config.Auth
	issuer string
	client *resty.Client
	logger *logger.Logger

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

// NewTokenVerifier constructs a [TokenVerifier] from the identity-provider
// configuration. The issuer URL is derived from the region and user pool id
// unless an explicit override is configured.
func NewTokenVerifier(cfg config.Auth, logger *logger.Logger) *TokenVerifier {
	issuer := cfg.Issuer
	if issuer == "" && cfg.Region != "" && cfg.UserPoolID != "" {
		issuer = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.Region, cfg.UserPoolID)
	}

	logger.Debug().Str("issuer", issuer).Msg("creating token verifier")
	return &TokenVerifier{
		cfg:    cfg,
		issuer: issuer,
		client: resty.New().SetTimeout(10 * time.Second),
		logger: logger,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

// Verify resolves the request's Authorization header into an
// [models.AuthResult].
//
// A request without a well-formed "Bearer <token>" header is anonymous, not
// an error. A token-bearing request fails with [ErrNotConfigured] when the
// provider settings are missing, or with [ErrInvalidToken] wrapping the
// underlying cause when verification fails.
func (v *TokenVerifier) Verify(ctx context.Context, header http.Header) models.AuthResult {
	token := BearerToken(header)
	if token == "" {
		return models.AuthResult{}
	}

	if v.cfg.UserPoolID == "" || v.cfg.ClientID == "" {
		return models.AuthResult{Err: ErrNotConfigured}
	}

	parsed, err := jwt.Parse(
		token,
		v.keyfunc(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.AuthResult{Err: fmt.Errorf("%w: %s", ErrInvalidToken, err)}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.AuthResult{Err: fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)}
	}

	if use, _ := claims["token_use"].(string); use != accessTokenUse {
		return models.AuthResult{Err: fmt.Errorf("%w: token_use is not %q", ErrInvalidToken, accessTokenUse)}
	}

	if clientID, _ := claims["client_id"].(string); clientID != v.cfg.ClientID {
		return models.AuthResult{Err: fmt.Errorf("%w: token issued for a different client", ErrInvalidToken)}
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.AuthResult{Err: fmt.Errorf("%w: missing subject", ErrInvalidToken)}
	}

	groups := stringSlice(claims[groupsClaim])

	return models.AuthResult{
		Authenticated: true,
		User: &models.AuthenticatedUser{
			SubjectID: sub,
			Email:     emailClaim(claims),
			Role:      DeriveRole(groups),
			Groups:    groups,
		},
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-sensitive and the value must be exactly two
// space-separated parts; any other shape is treated as no token at all.
func BearerToken(header http.Header) string {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != bearerScheme {
		return ""
	}

	return parts[1]
}

// keyfunc resolves a token's "kid" header to a cached RSA public key,
// refetching the JWKS document once when the kid is unknown (provider key
// rotation).
func (v *TokenVerifier) keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownSigningKey
		}

		v.mu.RLock()
		key, found := v.keys[kid]
		v.mu.RUnlock()
		if found {
			return key, nil
		}

		if err := v.fetchKeys(ctx); err != nil {
			return nil, err
		}

		v.mu.RLock()
		key, found = v.keys[kid]
		v.mu.RUnlock()
		if !found {
			return nil, ErrUnknownSigningKey
		}

		return key, nil
	}
}

// fetchKeys downloads the provider's JWKS document and replaces the key
// cache with its contents. Keys that fail to decode are skipped and logged.
func (v *TokenVerifier) fetchKeys(ctx context.Context) error {
	var doc jwks
	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(v.issuer + jwksPath)
	if err != nil {
		return fmt.Errorf("fetching signing keys: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetching signing keys: status %d", resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		pub, err := k.publicKey()
		if err != nil {
			v.logger.Warn().Err(err).Str("kid", k.Kid).Msg("skipping undecodable signing key")
			continue
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()

	v.logger.Debug().Int("keys", len(keys)).Msg("signing keys refreshed")
	return nil
}

// emailClaim reads the "email" claim, falling back to "username" — access
// tokens typically carry the latter only.
func emailClaim(claims jwt.MapClaims) string {
	if email, _ := claims["email"].(string); email != "" {
		return email
	}
	username, _ := claims["username"].(string)
	return username
}

// stringSlice converts a claim value decoded as []any into []string,
// returning an empty slice for absent or malformed claims.
func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
