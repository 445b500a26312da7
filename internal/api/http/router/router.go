package router

import (
	"github.com/raydent/raydent_backend/config"
	"github.com/raydent/raydent_backend/internal/api/http/handler"
	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/service/auth"
	"github.com/raydent/raydent_backend/internal/service/calendar"
	"github.com/raydent/raydent_backend/internal/service/clinic"
	"github.com/raydent/raydent_backend/internal/service/exam"
	"github.com/raydent/raydent_backend/internal/service/examtype"
	"github.com/raydent/raydent_backend/internal/service/file"
	"github.com/raydent/raydent_backend/internal/service/pricing"
	"github.com/raydent/raydent_backend/internal/service/report"
	"github.com/raydent/raydent_backend/internal/service/user"
	"github.com/raydent/raydent_backend/pkg/authorize"
	pasetotoken "github.com/raydent/raydent_backend/pkg/paseto"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Auth        authorize.IAuthorization
	DB          *repo.Client
	PasetoMgr   *pasetotoken.Manager
	AuthSvc     auth.Service
	UserSvc     user.Service
	ExamSvc     exam.Service
	PricingSvc  pricing.Service
	ReportSvc   report.Service
	ClinicSvc   clinic.Service
	ExamTypeSvc examtype.Service
	CalendarSvc calendar.Service
	FileSvc     file.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	currentUser := middleware.CurrentUser(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	examH := handler.NewExamHandler(r.p.ExamSvc)
	pricingH := handler.NewPricingHandler(r.p.PricingSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	examTypeH := handler.NewExamTypeHandler(r.p.ExamTypeSvc)
	calendarH := handler.NewCalendarHandler(r.p.CalendarSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired, currentUser)
	r.registerUserRoutes(api, userH, authRequired, currentUser, requirePerm)
	r.registerExamRoutes(api, examH, fileH, authRequired, currentUser, requirePerm)
	r.registerPricingRoutes(api, pricingH, authRequired, currentUser, requirePerm)
	r.registerReportRoutes(api, reportH, authRequired, currentUser, requirePerm)
	r.registerClinicRoutes(api, clinicH, authRequired, currentUser, requirePerm)
	r.registerExamTypeRoutes(api, examTypeH, authRequired, currentUser, requirePerm)
	r.registerCalendarRoutes(api, calendarH, authRequired, currentUser, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
