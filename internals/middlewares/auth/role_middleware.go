package auth

import (
	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/constants"
)

// RequireRoles menolak request yang rolenya tidak ada di daftar.
// Dipasang SETELAH AuthMiddleware.
func RequireRoles(roles ...constants.AccountRole) fiber.Handler {
	allowed := make(map[constants.AccountRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		roleStr, _ := c.Locals("account_role").(string)
		if _, ok := allowed[constants.AccountRole(roleStr)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}
