package models

// Role describes the access level derived from a verified token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AuthenticatedUser is the identity derived from a verified access token.
// It is never persisted; it is recomputed on every request from the token's
// claims, so group membership changes take effect on the next token.
type AuthenticatedUser struct {
	// SubjectID is the provider-assigned stable user identifier (the
	// "sub" claim).
	SubjectID string `json:"id"`

	// Email is the "email" claim, falling back to "username" when the
	// access token carries no email.
	Email string `json:"email"`

	// Role is RoleAdmin iff Groups contains "admin", RoleUser otherwise.
	Role Role `json:"role"`

	// Groups lists the provider group memberships from the token.
	Groups []string `json:"groups"`
}

// AuthResult is the outcome of running the token verifier against a
// request's headers.
//
// The four possible shapes:
//   - no token present:        {Authenticated: false, User: nil, Err: nil}
//   - verifier misconfigured:  {Authenticated: false, User: nil, Err: ErrNotConfigured}
//   - token invalid/expired:   {Authenticated: false, User: nil, Err: <cause>}
//   - token valid:             {Authenticated: true, User: non-nil}
type AuthResult struct {
	Authenticated bool
	User          *AuthenticatedUser
	Err           error
}
