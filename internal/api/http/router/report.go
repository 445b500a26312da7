package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerReportRoutes(api fiber.Router, h *handler.ReportHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/reports", authRequired, currentUser)

	// Self-scoped: authenticated users read their own financials row,
	// same pattern as /users/me.
	group.Get("/me", h.MyFinancials)

	group.Get("/dashboard", requirePerm(authorize.ResourceDashboard, authorize.ActionRead), h.Dashboard)
	group.Get("/radiologists", requirePerm(authorize.ResourceDashboard, authorize.ActionRead), h.PerRadiologist)
	group.Get("/clients", requirePerm(authorize.ResourceDashboard, authorize.ActionRead), h.PerClient)
}
