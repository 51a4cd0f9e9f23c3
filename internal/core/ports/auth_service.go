package ports

import (
	"context"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// RegisterInput carries self-registration data. Role may be user or vendor;
// admin accounts are only created through the admin surface.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// RegisterVendorInput registers a user and its vendor profile in one step.
type RegisterVendorInput struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
	Category    string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	RegisterVendor(ctx context.Context, input RegisterVendorInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user, or
	// domain.ErrInvalidCredentials for both unknown email and wrong password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Resolve turns an Authorization header value into the current principal,
	// fetched fresh from the store on every call.
	Resolve(ctx context.Context, authorizationHeader string) (*domain.User, error)
}
