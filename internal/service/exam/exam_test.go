package exam

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
	entevent "github.com/raydent/raydent_backend/internal/repo/examevent"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/service/pricing"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

type fixture struct {
	db       *repo.Client
	svc      Service
	pricing  pricing.Service
	clinicID uuid.UUID
	typeID   uuid.UUID
	clinic   *repo.User
	rad      *repo.User
	admin    *repo.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := openClient(t)

	cl := db.Clinic.Create().
		SetName("Sorriso Odontologia").
		SetEmail("contato@sorriso.example").
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)

	et := db.ExamType.Create().SetName("Panoramic").SaveX(ctx)

	clinicUser := db.User.Create().
		SetName("Front Desk").
		SetEmail("desk@sorriso.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleClient).
		SetClientID(cl.ID).
		SaveX(ctx)

	rad := db.User.Create().
		SetName("Dr. Ana").
		SetEmail("ana@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)

	admin := db.User.Create().
		SetName("Admin").
		SetEmail("admin@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleAdmin).
		SaveX(ctx)

	pricingSvc := pricing.New(db)
	return &fixture{
		db:       db,
		svc:      New(db, pricingSvc, nil),
		pricing:  pricingSvc,
		clinicID: cl.ID,
		typeID:   et.ID,
		clinic:   clinicUser,
		rad:      rad,
		admin:    admin,
	}
}

func (f *fixture) setClientPrice(t *testing.T, value int64) {
	t.Helper()
	_, err := f.pricing.UpsertClientPrice(context.Background(), pricing.UpsertClientPriceRequest{
		ClientID:    f.clinicID,
		ExamTypeID:  f.typeID,
		ClientValue: value,
	})
	require.NoError(t, err)
}

func (f *fixture) setRadiologistPrice(t *testing.T, value int64) {
	t.Helper()
	_, err := f.pricing.UpsertRadiologistPrice(context.Background(), pricing.UpsertRadiologistPriceRequest{
		ClientID:         f.clinicID,
		ExamTypeID:       f.typeID,
		RadiologistID:    f.rad.ID,
		RadiologistValue: value,
	})
	require.NoError(t, err)
}

func (f *fixture) createExam(t *testing.T, req CreateRequest) *repo.Exam {
	t.Helper()
	if req.ExamTypeID == uuid.Nil {
		req.ExamTypeID = f.typeID
	}
	if req.PatientName == "" {
		req.PatientName = "Maria Silva"
	}
	if req.Software == "" {
		req.Software = "axel"
	}
	e, err := f.svc.Create(context.Background(), f.clinic, req)
	require.NoError(t, err)
	return e
}

func TestCreateSnapshotsClientValue(t *testing.T) {
	f := newFixture(t)
	f.setClientPrice(t, 8000)

	e := f.createExam(t, CreateRequest{})
	require.Equal(t, int64(8000), e.ClientValue)
	require.Equal(t, int64(0), e.RadiologistValue)
	require.Equal(t, int64(8000), e.Margin)

	// Later price changes must not touch the stored snapshot.
	f.setClientPrice(t, 12000)
	got, err := f.svc.Get(context.Background(), f.admin, e.ID)
	require.NoError(t, err)
	require.Equal(t, int64(8000), got.ClientValue)
}

func TestCreateWithoutPriceEntryIsZero(t *testing.T) {
	f := newFixture(t)

	e := f.createExam(t, CreateRequest{})
	require.Equal(t, int64(0), e.ClientValue)
	require.Equal(t, int64(0), e.Margin)
}

func TestCreateUrgentRequiresDue(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.clinic, CreateRequest{
		ExamTypeID:  f.typeID,
		PatientName: "Maria Silva",
		Software:    "axel",
		Urgent:      true,
	})
	require.ErrorIs(t, err, ErrUrgentDueRequired)
}

func TestCreateForcesOwnClinic(t *testing.T) {
	f := newFixture(t)
	other := f.db.Clinic.Create().SetName("Outra Clinica").SaveX(context.Background())

	e := f.createExam(t, CreateRequest{ClientID: other.ID})
	require.Equal(t, f.clinicID, e.ClientID, "client users cannot order for another clinic")
}

func TestClaimSetsPayoutAndMargin(t *testing.T) {
	f := newFixture(t)
	f.setClientPrice(t, 10000)
	f.setRadiologistPrice(t, 3500)
	e := f.createExam(t, CreateRequest{})

	claimed, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.NoError(t, err)
	require.Equal(t, "in_review", string(claimed.Status))
	require.NotNil(t, claimed.RadiologistID)
	require.Equal(t, f.rad.ID, *claimed.RadiologistID)
	require.Equal(t, int64(3500), claimed.RadiologistValue)
	require.Equal(t, int64(6500), claimed.Margin)
	require.Equal(t, claimed.ClientValue-claimed.RadiologistValue, claimed.Margin)
}

func TestClaimTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{})

	other := f.db.User.Create().
		SetName("Dr. Bruno").
		SetEmail("bruno@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(context.Background())

	_, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.NoError(t, err)

	_, err = f.svc.Claim(context.Background(), other, e.ID)
	require.ErrorIs(t, err, ErrStatusConflict)

	// First claimer keeps the exam.
	got, err := f.svc.Get(context.Background(), f.admin, e.ID)
	require.NoError(t, err)
	require.Equal(t, f.rad.ID, *got.RadiologistID)
}

func TestClaimSoftwareIncompatible(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{Software: "morita"})

	_, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.ErrorIs(t, err, ErrSoftwareIncompatible)
}

func TestClaimRequiresRadiologistRole(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{})

	_, err := f.svc.Claim(context.Background(), f.clinic, e.ID)
	require.ErrorIs(t, err, ErrNotRadiologist)
}

func TestFinalizeOnlyByAssignee(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{})
	_, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.NoError(t, err)

	other := f.db.User.Create().
		SetName("Dr. Bruno").
		SetEmail("bruno@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(context.Background())

	_, err = f.svc.Finalize(context.Background(), other, e.ID, nil)
	require.ErrorIs(t, err, ErrStatusConflict)

	key := "exams/report.pdf"
	final, err := f.svc.Finalize(context.Background(), f.rad, e.ID, &key)
	require.NoError(t, err)
	require.Equal(t, "finalized", string(final.Status))
	require.NotNil(t, final.ReportFileKey)
	require.Equal(t, key, *final.ReportFileKey)
}

func TestFinalizedIsTerminal(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{})
	_, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.NoError(t, err)
	_, err = f.svc.Finalize(context.Background(), f.rad, e.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), f.admin, e.ID)
	require.ErrorIs(t, err, ErrStatusConflict)

	_, err = f.svc.Reassign(context.Background(), f.admin.ID, e.ID, f.rad.ID)
	require.ErrorIs(t, err, ErrTerminalStatus)
}

func TestCancelFromAvailableAndInReview(t *testing.T) {
	f := newFixture(t)

	a := f.createExam(t, CreateRequest{})
	got, err := f.svc.Cancel(context.Background(), f.clinic, a.ID)
	require.NoError(t, err)
	require.Equal(t, "cancelled", string(got.Status))

	b := f.createExam(t, CreateRequest{})
	_, err = f.svc.Claim(context.Background(), f.rad, b.ID)
	require.NoError(t, err)
	got, err = f.svc.Cancel(context.Background(), f.admin, b.ID)
	require.NoError(t, err)
	require.Equal(t, "cancelled", string(got.Status))

	// Cancelling twice is a conflict.
	_, err = f.svc.Cancel(context.Background(), f.admin, b.ID)
	require.ErrorIs(t, err, ErrStatusConflict)
}

func TestReassignRecomputesPayout(t *testing.T) {
	f := newFixture(t)
	f.setClientPrice(t, 10000)
	f.setRadiologistPrice(t, 3000)
	e := f.createExam(t, CreateRequest{})
	_, err := f.svc.Claim(context.Background(), f.rad, e.ID)
	require.NoError(t, err)

	other := f.db.User.Create().
		SetName("Dr. Bruno").
		SetEmail("bruno@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(context.Background())
	_, err = f.pricing.UpsertRadiologistPrice(context.Background(), pricing.UpsertRadiologistPriceRequest{
		ClientID:         f.clinicID,
		ExamTypeID:       f.typeID,
		RadiologistID:    other.ID,
		RadiologistValue: 4200,
	})
	require.NoError(t, err)

	got, err := f.svc.Reassign(context.Background(), f.admin.ID, e.ID, other.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID, *got.RadiologistID)
	require.Equal(t, int64(4200), got.RadiologistValue)
	require.Equal(t, int64(5800), got.Margin)
}

func TestReassignRejectsNonRadiologist(t *testing.T) {
	f := newFixture(t)
	e := f.createExam(t, CreateRequest{})

	_, err := f.svc.Reassign(context.Background(), f.admin.ID, e.ID, f.clinic.ID)
	require.ErrorIs(t, err, ErrNotRadiologist)
}

func TestListAvailableOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plain := f.createExam(t, CreateRequest{PatientName: "Plain"})
	due := time.Now().Add(2 * time.Hour)
	urgent := f.createExam(t, CreateRequest{PatientName: "Urgent", Urgent: true, UrgentDue: &due})
	laterDue := time.Now().Add(8 * time.Hour)
	urgentLater := f.createExam(t, CreateRequest{PatientName: "Urgent later", Urgent: true, UrgentDue: &laterDue})

	// A morita exam must not appear for an axel-only radiologist.
	f.createExam(t, CreateRequest{PatientName: "Hidden", Software: "morita"})

	got, err := f.svc.ListAvailable(ctx, f.rad)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, urgent.ID, got[0].ID)
	require.Equal(t, urgentLater.ID, got[1].ID)
	require.Equal(t, plain.ID, got[2].ID)
}

func TestListAvailableNoSoftwares(t *testing.T) {
	f := newFixture(t)
	f.createExam(t, CreateRequest{})

	bare := f.db.User.Create().
		SetName("Dr. Novo").
		SetEmail("novo@raydent.example").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SaveX(context.Background())

	got, err := f.svc.ListAvailable(context.Background(), bare)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListScoping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine := f.createExam(t, CreateRequest{})

	otherClinic := f.db.Clinic.Create().SetName("Outra").SaveX(ctx)
	foreign := f.db.Exam.Create().
		SetClientID(otherClinic.ID).
		SetExamTypeID(f.typeID).
		SetPatientName("Foreign").
		SetSoftware("axel").
		SetClientValue(0).
		SetRadiologistValue(0).
		SetMargin(0).
		SaveX(ctx)

	// Clinic users see their own clinic only.
	got, err := f.svc.List(ctx, f.clinic, ListRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, mine.ID, got[0].ID)

	// Admins see everything.
	got, err = f.svc.List(ctx, f.admin, ListRequest{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Visibility checks on Get follow the same rule.
	_, err = f.svc.Get(ctx, f.clinic, foreign.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestHistoryRecordsTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e := f.createExam(t, CreateRequest{})
	_, err := f.svc.Claim(ctx, f.rad, e.ID)
	require.NoError(t, err)
	_, err = f.svc.Finalize(ctx, f.rad, e.ID, nil)
	require.NoError(t, err)

	events, err := f.svc.History(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, entevent.StatusAvailable, events[0].Status)
	require.Equal(t, entevent.StatusInReview, events[1].Status)
	require.Equal(t, entevent.StatusFinalized, events[2].Status)
	require.Equal(t, f.rad.ID, *events[1].ActorID)
}
