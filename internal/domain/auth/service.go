package auth

import "context"

type AuthService interface {
	// Bootstrap seeds the default admin when no credential exists. It is safe
	// to call on every startup and reports whether a row was inserted.
	Bootstrap(ctx context.Context) (bool, error)

	// Validate reports whether username and password match a stored credential.
	Validate(ctx context.Context, username, password string) (bool, error)

	// Login validates the credential and issues an access token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
