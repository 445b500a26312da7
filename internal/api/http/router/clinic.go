package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerClinicRoutes(api fiber.Router, h *handler.ClinicHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/clients", authRequired, currentUser)

	group.Post("/", requirePerm(authorize.ResourceClient, authorize.ActionCreate), h.Create)
	group.Get("/", requirePerm(authorize.ResourceClient, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceClient, authorize.ActionRead), h.Get)
	group.Patch("/:id", requirePerm(authorize.ResourceClient, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceClient, authorize.ActionDelete), h.Delete)
}
