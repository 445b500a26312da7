package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/raydent/raydent_backend/internal/events"
	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entexamtype "github.com/raydent/raydent_backend/internal/repo/examtype"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/service/exam"
	"github.com/raydent/raydent_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc   fx.Lifecycle
	NC   *nats.Conn
	DB   *repo.Client
	Mail *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotifyWorker(p.NC, p.DB, p.Mail)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notify_worker
// ---------------------------------------------------------------------------

// examIDFromSubject extracts the trailing uuid segment of an event
// subject such as "raydent.exam.finalized.<id>".
func examIDFromSubject(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) < 4 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func startNotifyWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	// Finalized exams notify the ordering clinic.
	_, err := nc.Subscribe(events.SubjectExamFinalized+".*", func(msg *nats.Msg) {
		examID, valid := examIDFromSubject(msg.Subject)
		if !valid {
			return
		}
		ctx := context.Background()

		e, err := db.Exam.Query().Where(entexam.ID(examID)).Only(ctx)
		if err != nil {
			slog.Warn("notify_worker: exam not found", "id", examID, "err", err)
			return
		}

		clinic, err := db.Clinic.Get(ctx, e.ClientID)
		if err != nil {
			slog.Warn("notify_worker: clinic not found", "id", e.ClientID, "err", err)
			return
		}
		if clinic.Email == nil || *clinic.Email == "" {
			slog.Warn("notify_worker: clinic has no email on file", "clinic_id", clinic.ID)
			return
		}

		typeName := examTypeName(ctx, db, e.ExamTypeID)
		m := email.BuildExamFinalizedEmail([]string{*clinic.Email}, e.PatientName, typeName)
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("notify_worker: finalized email send failed", "exam_id", examID, "err", err)
		}
	})
	if err != nil {
		slog.Error("notify_worker: subscribe exam.finalized failed", "err", err)
	}

	// Urgent exams page every radiologist able to read the format.
	_, err = nc.Subscribe(events.SubjectExamCreated+".*", func(msg *nats.Msg) {
		examID, valid := examIDFromSubject(msg.Subject)
		if !valid {
			return
		}
		ctx := context.Background()

		e, err := db.Exam.Query().Where(entexam.ID(examID)).Only(ctx)
		if err != nil {
			slog.Warn("notify_worker: exam not found", "id", examID, "err", err)
			return
		}
		if !e.Urgent {
			return
		}

		radiologists, err := db.User.Query().
			Where(
				entuser.RoleEQ(entuser.RoleRadiologist),
				entuser.IsActive(true),
			).
			All(ctx)
		if err != nil {
			slog.Warn("notify_worker: radiologist lookup failed", "err", err)
			return
		}

		software := string(e.Software)
		recipients := lo.FilterMap(radiologists, func(u *repo.User, _ int) (string, bool) {
			return u.Email, lo.Contains(u.Softwares, software)
		})
		if len(recipients) == 0 {
			slog.Warn("notify_worker: urgent exam has no compatible radiologists",
				"exam_id", examID, "software", software)
			return
		}

		due := exam.Deadline(e.CreatedAt, e.Urgent, e.UrgentDue).Format(time.RFC1123)
		typeName := examTypeName(ctx, db, e.ExamTypeID)
		m := email.BuildUrgentExamEmail(recipients, e.PatientName, typeName, software, due)
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("notify_worker: urgent email send failed", "exam_id", examID, "err", err)
		}
	})
	if err != nil {
		slog.Error("notify_worker: subscribe exam.created failed", "err", err)
	}

	slog.Info("notify_worker: started")
}

func examTypeName(ctx context.Context, db *repo.Client, id uuid.UUID) string {
	t, err := db.ExamType.Query().Where(entexamtype.ID(id)).Only(ctx)
	if err != nil {
		return "exam"
	}
	return t.Name
}
