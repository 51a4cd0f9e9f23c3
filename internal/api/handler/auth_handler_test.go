package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	registerVendorFn func(ctx context.Context, input ports.RegisterVendorInput) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (string, *domain.User, error)
	resolveFn        func(ctx context.Context, header string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) RegisterVendor(ctx context.Context, input ports.RegisterVendorInput) (*domain.User, error) {
	return s.registerVendorFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Resolve(ctx context.Context, header string) (*domain.User, error) {
	return s.resolveFn(ctx, header)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Email != "a@x.com" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user-1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"a@x.com","password":"secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@x.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Bob","email":"a@x.com","password":"secret1"}`)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", "not-json")

	err := h.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Bob","password":"secret1"}`},
		{"bad email", `{"name":"Bob","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"Bob","email":"b@x.com","password":"abc"}`},
		{"admin role", `{"name":"Bob","email":"b@x.com","password":"secret1","role":"admin"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			h := NewAuthHandler(stub)

			c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", tc.body)

			err := h.Register(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_RegisterVendor_Success(t *testing.T) {
	stub := &stubAuthService{
		registerVendorFn: func(ctx context.Context, input ports.RegisterVendorInput) (*domain.User, error) {
			if input.CompanyName != "Bloom & Co" || input.Category != domain.CategoryFlorist {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user-1", Name: input.Name, Email: input.Email, Role: domain.RoleVendor}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register-vendor",
		`{"name":"Vera","email":"v@x.com","password":"secret1","company_name":"Bloom & Co","category":"Florist"}`)

	if err := h.RegisterVendor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_RegisterVendor_UnknownCategory(t *testing.T) {
	stub := &stubAuthService{
		registerVendorFn: func(ctx context.Context, input ports.RegisterVendorInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register-vendor",
		`{"name":"Vera","email":"v@x.com","password":"secret1","company_name":"Bloom & Co","category":"Plumbing"}`)

	err := h.RegisterVendor(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "user-1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("principal", &domain.User{ID: "user-1", Email: "a@x.com", Role: domain.RoleUser})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" {
		t.Fatalf("unexpected principal payload: %+v", resp)
	}
}

func TestAuthHandler_Me_NoPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
