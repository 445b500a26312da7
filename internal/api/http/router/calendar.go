package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerCalendarRoutes(api fiber.Router, h *handler.CalendarHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/calendar", authRequired, currentUser)

	meetings := group.Group("/meetings")
	meetings.Post("/", requirePerm(authorize.ResourceMeeting, authorize.ActionCreate), h.CreateMeeting)
	meetings.Get("/", requirePerm(authorize.ResourceMeeting, authorize.ActionList), h.ListMeetings)
	meetings.Get("/:id", requirePerm(authorize.ResourceMeeting, authorize.ActionRead), h.GetMeeting)
	meetings.Put("/:id", requirePerm(authorize.ResourceMeeting, authorize.ActionUpdate), h.UpdateMeeting)
	meetings.Delete("/:id", requirePerm(authorize.ResourceMeeting, authorize.ActionDelete), h.DeleteMeeting)

	vacations := group.Group("/vacations")
	vacations.Post("/", requirePerm(authorize.ResourceVacation, authorize.ActionCreate), h.CreateVacation)
	vacations.Get("/", requirePerm(authorize.ResourceVacation, authorize.ActionList), h.ListVacations)
	vacations.Delete("/:id", requirePerm(authorize.ResourceVacation, authorize.ActionDelete), h.DeleteVacation)
}
