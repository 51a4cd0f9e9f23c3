package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
)

// RBAC enforces role-based access control on the resolved principal.
// It is a pure membership check: the role examined is the one loaded from
// the store by Auth, never the role claim baked into the token.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := Principal(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[principal.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
