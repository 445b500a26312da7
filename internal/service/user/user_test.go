package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	casbin "github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/repo/enttest"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entrp "github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	entvacation "github.com/raydent/raydent_backend/internal/repo/vacation"
	"github.com/raydent/raydent_backend/pkg/authorize"
)

// fakeAuthz records grouping changes without a backing enforcer.
type fakeAuthz struct {
	granted map[string][]string
}

func newFakeAuthz() *fakeAuthz {
	return &fakeAuthz{granted: map[string][]string{}}
}

func (f *fakeAuthz) Enforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) MustEnforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) error {
	return nil
}

func (f *fakeAuthz) AddRoleForUserInDomain(_ context.Context, subject authorize.GroupSubject, role authorize.Role, _ authorize.Domain) (bool, error) {
	f.granted[string(subject)] = append(f.granted[string(subject)], string(role))
	return true, nil
}

func (f *fakeAuthz) RemoveRoleForUserInDomain(_ context.Context, subject authorize.GroupSubject, role authorize.Role, _ authorize.Domain) (bool, error) {
	roles := f.granted[string(subject)]
	for i, r := range roles {
		if r == string(role) {
			f.granted[string(subject)] = append(roles[:i], roles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthz) GetRolesForUserInDomain(_ context.Context, subject authorize.GroupSubject, _ authorize.Domain) ([]authorize.Role, error) {
	var roles []authorize.Role
	for _, r := range f.granted[string(subject)] {
		roles = append(roles, authorize.Role(r))
	}
	return roles, nil
}

func (f *fakeAuthz) AddPermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) RemovePermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newService(t *testing.T) (Service, *repo.Client, *fakeAuthz) {
	t.Helper()
	db := openClient(t)
	authz := newFakeAuthz()
	return New(db, nil, nil, authz), db, authz
}

func TestApprove(t *testing.T) {
	svc, db, authz := newService(t)
	ctx := context.Background()

	clinic := db.Clinic.Create().SetName("Sorriso").SaveX(ctx)
	pending := db.User.Create().
		SetName("Pending").
		SetEmail("pending@example.com").
		SetPasswordHash("x").
		SaveX(ctx)
	require.Equal(t, entuser.RoleNone, pending.Role)

	t.Run("client role requires clinic", func(t *testing.T) {
		_, err := svc.Approve(ctx, pending.ID, ApproveRequest{Role: "client"})
		require.ErrorIs(t, err, ErrClientRequired)
	})

	t.Run("unknown clinic rejected", func(t *testing.T) {
		bogus := uuid.New()
		_, err := svc.Approve(ctx, pending.ID, ApproveRequest{Role: "client", ClientID: &bogus})
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := svc.Approve(ctx, pending.ID, ApproveRequest{Role: "superuser"})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("approve as client", func(t *testing.T) {
		u, err := svc.Approve(ctx, pending.ID, ApproveRequest{Role: "client", ClientID: &clinic.ID})
		require.NoError(t, err)
		require.Equal(t, entuser.RoleClient, u.Role)
		require.Equal(t, clinic.ID, *u.ClientID)
		require.Contains(t, authz.granted[pending.ID.String()], string(authorize.RoleClinicUser))
	})

	t.Run("role change revokes previous grant", func(t *testing.T) {
		_, err := svc.Approve(ctx, pending.ID, ApproveRequest{
			Role:      "radiologist",
			Softwares: []string{"axel"},
		})
		require.NoError(t, err)
		roles := authz.granted[pending.ID.String()]
		require.Contains(t, roles, string(authorize.RoleRadiologist))
		require.NotContains(t, roles, string(authorize.RoleClinicUser))
	})
}

func TestCreateRadiologist(t *testing.T) {
	svc, db, authz := newService(t)
	ctx := context.Background()

	t.Run("validates email", func(t *testing.T) {
		_, err := svc.CreateRadiologist(ctx, CreateRadiologistRequest{
			Name: "Dr. Ana", Email: "not-an-email", Softwares: []string{"axel"},
		})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("requires softwares", func(t *testing.T) {
		_, err := svc.CreateRadiologist(ctx, CreateRadiologistRequest{
			Name: "Dr. Ana", Email: "ana@example.com",
		})
		require.ErrorIs(t, err, ErrInvalidSoftware)
	})

	t.Run("rejects unknown software", func(t *testing.T) {
		_, err := svc.CreateRadiologist(ctx, CreateRadiologistRequest{
			Name: "Dr. Ana", Email: "ana@example.com", Softwares: []string{"vistascan"},
		})
		require.ErrorIs(t, err, ErrInvalidSoftware)
	})

	t.Run("creates active radiologist", func(t *testing.T) {
		u, err := svc.CreateRadiologist(ctx, CreateRadiologistRequest{
			Name:      "Dr. Ana",
			Email:     "Ana@Example.com",
			Password:  "longenoughpassword",
			Softwares: []string{"axel", "morita"},
		})
		require.NoError(t, err)
		require.Equal(t, "ana@example.com", u.Email, "email is normalized")
		require.Equal(t, entuser.RoleRadiologist, u.Role)
		require.Contains(t, authz.granted[u.ID.String()], string(authorize.RoleRadiologist))

		_, err = svc.CreateRadiologist(ctx, CreateRadiologistRequest{
			Name: "Dup", Email: "ana@example.com", Softwares: []string{"axel"},
		})
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	_ = db
}

func TestDeleteCascade(t *testing.T) {
	svc, db, authz := newService(t)
	ctx := context.Background()

	clinic := db.Clinic.Create().SetName("Sorriso").SaveX(ctx)
	et := db.ExamType.Create().SetName("Panoramic").SaveX(ctx)

	rad := db.User.Create().
		SetName("Dr. Ana").
		SetEmail("ana@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleRadiologist).
		SetSoftwares([]string{"axel"}).
		SaveX(ctx)
	authz.granted[rad.ID.String()] = []string{string(authorize.RoleRadiologist)}

	exam := db.Exam.Create().
		SetClientID(clinic.ID).
		SetExamTypeID(et.ID).
		SetPatientName("Maria").
		SetSoftware("axel").
		SetStatus("in_review").
		SetRadiologistID(rad.ID).
		SetClientValue(1000).
		SetRadiologistValue(300).
		SetMargin(700).
		SaveX(ctx)

	db.Vacation.Create().
		SetUserID(rad.ID).
		SetStartDate(time.Now()).
		SetEndDate(time.Now().AddDate(0, 0, 7)).
		SaveX(ctx)

	db.RadiologistPrice.Create().
		SetClientID(clinic.ID).
		SetExamTypeID(et.ID).
		SetRadiologistID(rad.ID).
		SetRadiologistValue(300).
		SaveX(ctx)

	admin := db.User.Create().
		SetName("Admin").
		SetEmail("admin@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleAdmin).
		SaveX(ctx)

	t.Run("self delete rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, rad.ID, rad.ID), ErrSelfDelete)
	})

	t.Run("cascade", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, admin.ID, rad.ID))

		_, err := db.User.Get(ctx, rad.ID)
		require.True(t, repo.IsNotFound(err))

		// Claimed exams survive without an assignee.
		e := db.Exam.Query().Where(entexam.ID(exam.ID)).OnlyX(ctx)
		require.Nil(t, e.RadiologistID)

		require.Zero(t, db.Vacation.Query().Where(entvacation.UserID(rad.ID)).CountX(ctx))
		require.Zero(t, db.RadiologistPrice.Query().Where(entrp.RadiologistID(rad.ID)).CountX(ctx))
		require.NotContains(t, authz.granted[rad.ID.String()], string(authorize.RoleRadiologist))
	})
}
