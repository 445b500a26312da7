package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/raydent/raydent_backend/internal/repo"
	pasetotoken "github.com/raydent/raydent_backend/pkg/paseto"
)

const LocalsCurrentUser = "current_user"

// CurrentUser loads the authenticated account row and stores it in Locals
// for downstream handlers. Runs after AuthRequired. Deactivated accounts
// are cut off here even if their token is still valid.
func CurrentUser(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Get(c.Context(), claims.UserID)
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrUnauthorized
			}
			return err
		}
		if !u.IsActive {
			return fiber.ErrForbidden
		}

		c.Locals(LocalsCurrentUser, u)
		return c.Next()
	}
}

// UserFromLocals retrieves the account row stored by CurrentUser.
func UserFromLocals(c fiber.Ctx) (*repo.User, bool) {
	u, ok := c.Locals(LocalsCurrentUser).(*repo.User)
	return u, ok && u != nil
}
