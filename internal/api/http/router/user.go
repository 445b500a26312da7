package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/users", authRequired, currentUser)

	group.Get("/me", h.Me)

	group.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	group.Post("/radiologists", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.CreateRadiologist)
	group.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.Get)
	group.Post("/:id/approve", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Approve)
	group.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)
}
