package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

func newAuthFixture() (*AuthService, *stubUserRepo, *stubVendorRepo, *TokenCodec) {
	users := newStubUserRepo()
	vendors := newStubVendorRepo()
	codec := NewTokenCodec("test-secret", time.Hour)
	svc := NewAuthService(users, vendors, codec, zerolog.Nop())
	return svc, users, vendors, codec
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", user.PasswordHash)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Mallory", Email: "m@x.com", Password: "secret1", Role: domain.RoleAdmin,
	}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for admin self-registration, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Other", Email: "a@x.com", Password: "secret2",
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RegisterVendor_CreatesActiveProfile(t *testing.T) {
	svc, _, vendors, _ := newAuthFixture()

	user, err := svc.RegisterVendor(context.Background(), ports.RegisterVendorInput{
		Name: "Bob", Email: "b@x.com", Password: "secret1",
		CompanyName: "Bob's Blooms", Category: domain.CategoryFlorist,
	})
	if err != nil {
		t.Fatalf("RegisterVendor returned error: %v", err)
	}
	if user.Role != domain.RoleVendor {
		t.Fatalf("expected vendor role, got %s", user.Role)
	}

	vendor, err := vendors.FindByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("vendor profile missing: %v", err)
	}
	if vendor.MembershipStatus != domain.MembershipActive {
		t.Fatalf("expected active membership, got %s", vendor.MembershipStatus)
	}
	if vendor.CompanyName != "Bob's Blooms" {
		t.Fatalf("unexpected company name: %s", vendor.CompanyName)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, codec := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@x.com", Password: "s3cret1",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.Email != "carol@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.SubjectID != user.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@x.com", Password: "goodpass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPass := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestAuthService_Resolve_Success(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Erin", Email: "erin@x.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "erin@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	principal, err := svc.Resolve(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if principal.Email != "erin@x.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.PasswordHash == "" {
		t.Fatalf("resolver should return the full stored record")
	}
}

func TestAuthService_Resolve_MissingOrMalformedHeader(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	for _, header := range []string{"", "Token abc", "Bearer"} {
		if _, err := svc.Resolve(context.Background(), header); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("header %q: expected ErrUnauthenticated, got %v", header, err)
		}
	}
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Resolve(context.Background(), "Bearer not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Resolve_DeletedPrincipal(t *testing.T) {
	svc, users, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Frank", Email: "frank@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "frank@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := users.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "Bearer "+token); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestAuthService_Resolve_FreshRoleWins(t *testing.T) {
	svc, users, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Grace", Email: "grace@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "grace@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Promote after the token was issued; the token still carries "user".
	stored, _ := users.FindByID(context.Background(), user.ID)
	stored.Role = domain.RoleAdmin
	if _, err := users.Update(context.Background(), stored); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	principal, err := svc.Resolve(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if principal.Role != domain.RoleAdmin {
		t.Fatalf("resolver must return the stored role, got %s", principal.Role)
	}
}
