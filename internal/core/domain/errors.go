package domain

import "errors"

// Authentication failure kinds. Each is terminal and surfaced to the caller
// as its own response; none are retried internally.
var (
	// ErrUnauthenticated: no Authorization header, or not a Bearer credential.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidToken: signature mismatch, malformed token, or past expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPrincipalNotFound: claims decoded but the user no longer exists,
	// i.e. a still-unexpired token held after account deletion.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrForbidden: valid principal, insufficient role.
	ErrForbidden = errors.New("access forbidden")
	// ErrInvalidCredentials covers both unknown email and wrong password at
	// login, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Domain-level failures.
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")
)
