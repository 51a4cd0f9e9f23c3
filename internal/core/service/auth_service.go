package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// AuthService implements registration, login and identity resolution.
type AuthService struct {
	users   ports.UserRepository
	vendors ports.VendorRepository
	hasher  *PasswordHasher
	codec   *TokenCodec
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, vendors ports.VendorRepository, codec *TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		vendors: vendors,
		hasher:  NewPasswordHasher(),
		codec:   codec,
		logger:  logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	// Self-registration never mints admins.
	if role != domain.RoleUser && role != domain.RoleVendor {
		return nil, domain.ErrInvalidCredentials
	}
	return s.createUser(ctx, input.Name, input.Email, input.Password, role)
}

func (s *AuthService) RegisterVendor(ctx context.Context, input ports.RegisterVendorInput) (*domain.User, error) {
	user, err := s.createUser(ctx, input.Name, input.Email, input.Password, domain.RoleVendor)
	if err != nil {
		return nil, err
	}

	_, err = s.vendors.Create(ctx, &domain.Vendor{
		UserID:           user.ID,
		CompanyName:      input.CompanyName,
		Category:         input.Category,
		MembershipStatus: domain.MembershipActive,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("company", input.CompanyName).Msg("vendor registered")
	return user, nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both come back as ErrInvalidCredentials, and the unknown-email
// path still pays for one hash comparison so the two are not
// distinguishable by timing either.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.VerifyDummy(password)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(Claims{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Resolve walks the full chain from Authorization header to principal:
// header parsed, signature and expiry checked, then the user loaded fresh
// from the store. Enforcement downstream uses the stored role, not the role
// baked into the token — that re-fetch is how role changes and deletions
// take effect without a revocation list.
func (s *AuthService) Resolve(ctx context.Context, authorizationHeader string) (*domain.User, error) {
	if authorizationHeader == "" {
		return nil, domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := s.codec.Verify(parts[1])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return user, nil
}
