package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// principalKey is where the resolved principal lives on the echo context.
const principalKey = "principal"

// Auth resolves the bearer token into the current principal and injects it
// into the request context. The principal is fetched fresh from the store
// on every request; nothing from the token besides the subject survives
// into downstream checks. Failures propagate to the central error handler,
// which keeps the three 401 kinds distinct from RBAC's 403.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := auth.Resolve(c.Request().Context(), c.Request().Header.Get("Authorization"))
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal extracts the authenticated user injected by Auth.
func Principal(c echo.Context) (*domain.User, error) {
	principal, _ := c.Get(principalKey).(*domain.User)
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	return principal, nil
}
