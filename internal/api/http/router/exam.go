package router

import (
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerExamRoutes(api fiber.Router, h *handler.ExamHandler, fileH *handler.FileHandler, authRequired, currentUser fiber.Handler, requirePerm func(authorize.Resource, authorize.Action) fiber.Handler) {
	group := api.Group("/exams", authRequired, currentUser)

	group.Post("/", requirePerm(authorize.ResourceExam, authorize.ActionCreate), h.Create)
	group.Get("/", requirePerm(authorize.ResourceExam, authorize.ActionList), h.List)
	group.Get("/available", requirePerm(authorize.ResourceExam, authorize.ActionList), h.ListAvailable)
	group.Get("/:id", requirePerm(authorize.ResourceExam, authorize.ActionRead), h.Get)
	group.Get("/:id/history", requirePerm(authorize.ResourceExam, authorize.ActionRead), h.History)

	group.Post("/:id/claim", requirePerm(authorize.ResourceExam, authorize.ActionClaim), h.Claim)
	group.Post("/:id/finalize", requirePerm(authorize.ResourceExam, authorize.ActionFinalize), h.Finalize)
	group.Post("/:id/cancel", requirePerm(authorize.ResourceExam, authorize.ActionCancel), h.Cancel)
	group.Post("/:id/reassign", requirePerm(authorize.ResourceExam, authorize.ActionReassign), h.Reassign)

	group.Post("/:id/source", requirePerm(authorize.ResourceExamFile, authorize.ActionCreate), fileH.UploadSource)
	group.Get("/:id/source/download", requirePerm(authorize.ResourceExamFile, authorize.ActionRead), fileH.SourceDownloadURL)
	group.Post("/:id/report", requirePerm(authorize.ResourceExamReport, authorize.ActionCreate), fileH.UploadReport)
	group.Get("/:id/report/download", requirePerm(authorize.ResourceExamReport, authorize.ActionRead), fileH.ReportDownloadURL)
}
