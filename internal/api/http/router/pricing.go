package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerPricingRoutes(api fiber.Router, h *handler.PricingHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/prices", authRequired, currentUser)

	clients := group.Group("/clients")
	clients.Get("/", requirePerm(authorize.ResourcePriceTable, authorize.ActionList), h.ListClientPrices)
	clients.Put("/", requirePerm(authorize.ResourcePriceTable, authorize.ActionUpdate), h.UpsertClientPrice)
	clients.Delete("/:id", requirePerm(authorize.ResourcePriceTable, authorize.ActionDelete), h.DeleteClientPrice)

	radiologists := group.Group("/radiologists")
	radiologists.Get("/", requirePerm(authorize.ResourcePriceTable, authorize.ActionList), h.ListRadiologistPrices)
	radiologists.Put("/", requirePerm(authorize.ResourcePriceTable, authorize.ActionUpdate), h.UpsertRadiologistPrice)
	radiologists.Delete("/:id", requirePerm(authorize.ResourcePriceTable, authorize.ActionDelete), h.DeleteRadiologistPrice)
}
