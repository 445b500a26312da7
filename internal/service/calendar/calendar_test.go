package calendar

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
	entmp "github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedUser(t *testing.T, db *repo.Client, name, email string, role entuser.Role) *repo.User {
	t.Helper()
	return db.User.Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash("x").
		SetRole(role).
		SaveX(context.Background())
}

func TestCreateMeetingValidation(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Dr. Ana", "ana@example.com", entuser.RoleRadiologist)
	start := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	_, err := svc.CreateMeeting(ctx, owner.ID, MeetingRequest{
		Title:    "   ",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	})
	require.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateMeeting(ctx, owner.ID, MeetingRequest{
		Title:    "Case review",
		StartsAt: start,
		EndsAt:   start,
	})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestMeetingLifecycle(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Dr. Ana", "ana@example.com", entuser.RoleRadiologist)
	guest := seedUser(t, db, "Dr. Bruno", "bruno@example.com", entuser.RoleRadiologist)
	admin := seedUser(t, db, "Admin", "admin@example.com", entuser.RoleAdmin)

	start := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	m, err := svc.CreateMeeting(ctx, owner.ID, MeetingRequest{
		Title:        "  Case review ",
		Description:  "Monthly case review",
		StartsAt:     start,
		EndsAt:       start.Add(time.Hour),
		Participants: []uuid.UUID{owner.ID, guest.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "Case review", m.Meeting.Title, "title is trimmed")
	require.Equal(t, owner.ID, m.Meeting.CreatedBy)

	got, err := svc.GetMeeting(ctx, m.Meeting.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{owner.ID, guest.ID}, got.Participants)

	// Update replaces the participant set wholesale.
	updated, err := svc.UpdateMeeting(ctx, owner, m.Meeting.ID, MeetingRequest{
		Title:        "Case review",
		StartsAt:     start,
		EndsAt:       start.Add(2 * time.Hour),
		Participants: []uuid.UUID{guest.ID},
	})
	require.NoError(t, err)
	require.Equal(t, start.Add(2*time.Hour), updated.Meeting.EndsAt.UTC())

	got, err = svc.GetMeeting(ctx, m.Meeting.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{guest.ID}, got.Participants)

	// A participant is not the owner.
	_, err = svc.UpdateMeeting(ctx, guest, m.Meeting.ID, MeetingRequest{
		Title:    "Hijack",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	})
	require.ErrorIs(t, err, ErrNotOwner)
	require.ErrorIs(t, svc.DeleteMeeting(ctx, guest, m.Meeting.ID), ErrNotOwner)

	// Admins may delete any meeting.
	require.NoError(t, svc.DeleteMeeting(ctx, admin, m.Meeting.ID))
	require.Zero(t, db.MeetingParticipant.Query().
		Where(entmp.MeetingID(m.Meeting.ID)).
		CountX(ctx))

	_, err = svc.GetMeeting(ctx, m.Meeting.ID)
	require.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestListMeetingsWindow(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Dr. Ana", "ana@example.com", entuser.RoleRadiologist)
	base := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	for _, offset := range []int{0, 5, 40} {
		_, err := svc.CreateMeeting(ctx, owner.ID, MeetingRequest{
			Title:    "Sync",
			StartsAt: base.AddDate(0, 0, offset),
			EndsAt:   base.AddDate(0, 0, offset).Add(time.Hour),
		})
		require.NoError(t, err)
	}

	got, err := svc.ListMeetings(ctx, base, base.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, got, 2, "meetings starting outside the window are excluded")
}

func TestVacations(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	rad := seedUser(t, db, "Dr. Ana", "ana@example.com", entuser.RoleRadiologist)
	other := seedUser(t, db, "Dr. Bruno", "bruno@example.com", entuser.RoleRadiologist)
	admin := seedUser(t, db, "Admin", "admin@example.com", entuser.RoleAdmin)

	start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateVacation(ctx, rad.ID, VacationRequest{
		StartDate: start,
		EndDate:   start,
	})
	require.ErrorIs(t, err, ErrInvalidRange)

	v, err := svc.CreateVacation(ctx, rad.ID, VacationRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Note:      "Annual leave",
	})
	require.NoError(t, err)
	require.Equal(t, rad.ID, v.UserID)

	// The overlap query catches vacations straddling the window edge.
	got, err := svc.ListVacations(ctx, start.AddDate(0, 0, 7), start.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.ListVacations(ctx, start.AddDate(0, 0, 20), start.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Empty(t, got)

	require.ErrorIs(t, svc.DeleteVacation(ctx, other, v.ID), ErrNotOwner)
	require.NoError(t, svc.DeleteVacation(ctx, rad, v.ID))
	require.ErrorIs(t, svc.DeleteVacation(ctx, admin, v.ID), ErrVacationNotFound)
}
