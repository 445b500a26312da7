package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired, currentUser fiber.Handler) {
	group := api.Group("/auth")

	// Credential endpoints get a tighter rate limit than the global one.
	throttled := middleware.NewAuthLimiter(r.p.Redis)

	group.Post("/register", throttled, h.Register)
	group.Post("/login", throttled, h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/password/forgot", throttled, h.ForgotPassword)
	group.Post("/password/reset", throttled, h.ResetPassword)
	group.Post("/password/change", authRequired, currentUser, h.ChangePassword)
}
