package ports

import "context"

// AdminAuthService guards the operational endpoints (menu reload, shell cache
// install). There is a single operator identity; no user accounts.
type AdminAuthService interface {
	// Login checks the operator password and returns a signed token.
	Login(ctx context.Context, password string) (token string, err error)
	// ValidateToken returns an error when the token is missing, malformed,
	// expired or signed with the wrong key.
	ValidateToken(ctx context.Context, token string) error
}
