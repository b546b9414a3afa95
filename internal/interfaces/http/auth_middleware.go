package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/domain"
	"github.com/arquetipo/clientes-api/pkg/jwt"
)

// Claves de c.Locals que deja AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// TokenVerifier valida un Bearer token. *jwt.Manager lo cumple.
type TokenVerifier interface {
	Verify(token string) (jwt.Identity, error)
}

// AuthMiddleware exige "Authorization: Bearer <token>" y guarda la identidad en c.Locals.
func AuthMiddleware(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, found := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		switch {
		case scheme == "":
			return authError(c, "MISSING_TOKEN", fmt.Errorf("%w: falta el header Authorization", domain.ErrUnauthorized))
		case !found || !strings.EqualFold(scheme, "Bearer"):
			return authError(c, "INVALID_TOKEN", fmt.Errorf("%w: se espera Bearer <token>", domain.ErrUnauthorized))
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return authError(c, "MISSING_TOKEN", fmt.Errorf("%w: token vacío", domain.ErrUnauthorized))
		}
		id, err := tokens.Verify(token)
		if err != nil {
			return authError(c, "INVALID_TOKEN", fmt.Errorf("%w: token inválido o expirado", domain.ErrUnauthorized))
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// RequireRole deja pasar solo los roles indicados (sin distinguir mayúsculas).
// Va después de AuthMiddleware: sin rol responde 401 MISSING_ROLE, con otro rol 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return authError(c, "MISSING_ROLE", fmt.Errorf("%w: el token no incluye rol", domain.ErrUnauthorized))
		}
		if !allowed[strings.ToLower(role)] {
			return authError(c, "FORBIDDEN", fmt.Errorf("%w: el rol %q no puede realizar esta operación", domain.ErrForbidden, role))
		}
		return c.Next()
	}
}

// GetUserID UserID autenticado ("" fuera de AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole rol autenticado ("" fuera de AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
