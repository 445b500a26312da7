package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerExamTypeRoutes(api fiber.Router, h *handler.ExamTypeHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/exam-types", authRequired, currentUser)

	group.Get("/", requirePerm(authorize.ResourceExamType, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceExamType, authorize.ActionCreate), h.Create)
	group.Patch("/:id", requirePerm(authorize.ResourceExamType, authorize.ActionUpdate), h.Rename)
	group.Delete("/:id", requirePerm(authorize.ResourceExamType, authorize.ActionDelete), h.Delete)
}
