package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/raydent/raydent_backend/config"
	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/service/auth"
	"github.com/raydent/raydent_backend/internal/service/calendar"
	"github.com/raydent/raydent_backend/internal/service/clinic"
	"github.com/raydent/raydent_backend/internal/service/exam"
	"github.com/raydent/raydent_backend/internal/service/examtype"
	svcfile "github.com/raydent/raydent_backend/internal/service/file"
	"github.com/raydent/raydent_backend/internal/service/pricing"
	"github.com/raydent/raydent_backend/internal/service/report"
	"github.com/raydent/raydent_backend/internal/service/user"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/raydent/raydent_backend/pkg/email"
	pasetotoken "github.com/raydent/raydent_backend/pkg/paseto"
	s3pkg "github.com/raydent/raydent_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePricingService,
		ProvideExamService,
		ProvideReportService,
		ProvideClinicService,
		ProvideExamTypeService,
		ProvideCalendarService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mail, paseto, cfg)
}

func ProvideUserService(db *repo.Client, mail *email.Client, cfg *config.Config, authz authorize.IAuthorization) user.Service {
	return user.New(db, mail, cfg, authz)
}

func ProvidePricingService(db *repo.Client) pricing.Service {
	return pricing.New(db)
}

func ProvideExamService(db *repo.Client, pricingSvc pricing.Service, nc *nats.Conn) exam.Service {
	return exam.New(db, pricingSvc, nc)
}

func ProvideReportService(db *repo.Client) report.Service {
	return report.New(db)
}

func ProvideClinicService(db *repo.Client) clinic.Service {
	return clinic.New(db)
}

func ProvideExamTypeService(db *repo.Client) examtype.Service {
	return examtype.New(db)
}

func ProvideCalendarService(db *repo.Client) calendar.Service {
	return calendar.New(db)
}

func ProvideFileService(db *repo.Client, s3 *s3pkg.Client, exams exam.Service) svcfile.Service {
	return svcfile.New(db, s3, exams)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
