package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// Local key para el usuario autenticado en Fiber.
const LocalUser = "auth_user"

// AuthMiddleware autentica la petición con "Basic base64(email:password)" o
// "Bearer <jwt>" y deja el *entity.User en c.Locals.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: "Authorization header requerido"})
		}

		var (
			user *entity.User
			err  error
		)
		switch {
		case strings.HasPrefix(authHeader, "Basic "):
			user, err = authUC.AuthenticateBasic(authHeader)
		case strings.HasPrefix(authHeader, "Bearer "):
			user, err = authUC.ParseBearer(strings.TrimSpace(authHeader[len("Bearer "):]))
		default:
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "formato: Basic <base64> o Bearer <token>"})
		}
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas o expiradas"})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados (después de AuthMiddleware).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: "no autenticado"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUser devuelve el usuario autenticado del contexto, o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetRole devuelve el rol del usuario autenticado, o "".
func GetRole(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Role
	}
	return ""
}
