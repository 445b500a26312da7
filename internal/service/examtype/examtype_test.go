package examtype

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/repo/enttest"
	entcp "github.com/raydent/raydent_backend/internal/repo/clientprice"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCreateAndRename(t *testing.T) {
	svc := New(openClient(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "  ")
	require.ErrorIs(t, err, ErrNameRequired)

	pan, err := svc.Create(ctx, "Panoramic")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Panoramic")
	require.ErrorIs(t, err, ErrNameExists)

	tomo, err := svc.Create(ctx, "Tomography")
	require.NoError(t, err)

	// Renaming onto an existing name is rejected; renaming to itself is not.
	_, err = svc.Rename(ctx, tomo.ID, "Panoramic")
	require.ErrorIs(t, err, ErrNameExists)
	_, err = svc.Rename(ctx, pan.ID, "Panoramic")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, tomo.ID, "Cone Beam CT")
	require.NoError(t, err)
	require.Equal(t, "Cone Beam CT", renamed.Name)
}

func TestDeleteInUse(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	et, err := svc.Create(ctx, "Panoramic")
	require.NoError(t, err)

	clinic := db.Clinic.Create().SetName("Sorriso").SaveX(ctx)
	db.Exam.Create().
		SetClientID(clinic.ID).
		SetExamTypeID(et.ID).
		SetPatientName("Maria").
		SetSoftware("axel").
		SetClientValue(0).
		SetRadiologistValue(0).
		SetMargin(0).
		SaveX(ctx)

	require.ErrorIs(t, svc.Delete(ctx, et.ID), ErrInUse)
}

func TestDeleteRemovesPriceEntries(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	et, err := svc.Create(ctx, "Panoramic")
	require.NoError(t, err)

	clinic := db.Clinic.Create().SetName("Sorriso").SaveX(ctx)
	db.ClientPrice.Create().
		SetClientID(clinic.ID).
		SetExamTypeID(et.ID).
		SetClientValue(7000).
		SaveX(ctx)

	require.NoError(t, svc.Delete(ctx, et.ID))
	require.Zero(t, db.ClientPrice.Query().Where(entcp.ExamTypeID(et.ID)).CountX(ctx))
}
