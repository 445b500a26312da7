package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/repo/enttest"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedExam(t *testing.T, db *repo.Client, clientID, typeID uuid.UUID, radID *uuid.UUID, status entexam.Status, radValue int64, at time.Time) {
	t.Helper()
	b := db.Exam.Create().
		SetClientID(clientID).
		SetExamTypeID(typeID).
		SetPatientName("Paciente Teste").
		SetSoftware(entexam.SoftwareAxel).
		SetStatus(status).
		SetClientValue(10000).
		SetRadiologistValue(radValue).
		SetMargin(10000 - radValue).
		SetCreatedAt(at)
	if radID != nil {
		b = b.SetRadiologistID(*radID)
	}
	b.SaveX(context.Background())
}

func TestForRadiologist(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	svc := New(db)

	cl := db.Clinic.Create().
		SetName("Sorriso Odontologia").
		SetEmail("contato@sorriso.example").
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)
	et := db.ExamType.Create().SetName("Panoramic").SaveX(ctx)

	ana := db.User.Create().
		SetName("Dr. Ana").
		SetEmail("ana@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)
	bruno := db.User.Create().
		SetName("Dr. Bruno").
		SetEmail("bruno@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)

	month := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	in := month.AddDate(0, 0, 10)

	seedExam(t, db, cl.ID, et.ID, &ana.ID, entexam.StatusFinalized, 3000, in)
	seedExam(t, db, cl.ID, et.ID, &ana.ID, entexam.StatusFinalized, 5000, in)
	seedExam(t, db, cl.ID, et.ID, &ana.ID, entexam.StatusInReview, 4000, in)
	// Noise: another radiologist's work, and Ana's work outside the month.
	seedExam(t, db, cl.ID, et.ID, &bruno.ID, entexam.StatusFinalized, 9000, in)
	seedExam(t, db, cl.ID, et.ID, &ana.ID, entexam.StatusFinalized, 7000, month.AddDate(0, -1, 0))

	row, err := svc.ForRadiologist(ctx, ana.ID, month)
	require.NoError(t, err)
	require.Equal(t, ana.ID, row.RadiologistID)
	require.Equal(t, "Dr. Ana", row.Name)
	require.Equal(t, 2, row.Count)
	require.Equal(t, int64(8000), row.Total)
	require.Equal(t, int64(4000), row.UnitValue)
	require.Equal(t, 1, row.InReview)
}

func TestForRadiologistEmptyMonth(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	svc := New(db)

	ana := db.User.Create().
		SetName("Dr. Ana").
		SetEmail("ana@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)

	month := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	row, err := svc.ForRadiologist(ctx, ana.ID, month)
	require.NoError(t, err)
	require.Equal(t, ana.ID, row.RadiologistID)
	require.Equal(t, "Dr. Ana", row.Name)
	require.Zero(t, row.Count)
	require.Zero(t, row.Total)
	require.Zero(t, row.InReview)
}
