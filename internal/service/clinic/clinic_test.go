package clinic

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

func TestCreateValidation(t *testing.T) {
	svc := New(openClient(t))
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "  "})
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("tax id format", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Sorriso", TaxID: "12345"})
		require.ErrorIs(t, err, ErrInvalidTaxID)
	})

	t.Run("accepts punctuated cnpj", func(t *testing.T) {
		c, err := svc.Create(ctx, CreateRequest{Name: "Sorriso", TaxID: "12.345.678/0001-95"})
		require.NoError(t, err)
		require.Equal(t, "12.345.678/0001-95", *c.TaxID)
	})

	t.Run("duplicate tax id", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Outra", TaxID: "12.345.678/0001-95"})
		require.ErrorIs(t, err, ErrTaxIDExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Outra", Email: "nope"})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestListFiltersActive(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	active, err := svc.Create(ctx, CreateRequest{Name: "Ativa"})
	require.NoError(t, err)
	inactive, err := svc.Create(ctx, CreateRequest{Name: "Inativa"})
	require.NoError(t, err)

	off := false
	_, err = svc.Update(ctx, inactive.ID, UpdateRequest{IsActive: &off})
	require.NoError(t, err)

	on := true
	got, err := svc.List(ctx, ListRequest{Active: &on})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, active.ID, got[0].ID)

	got, err = svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestDeleteBlockedByExams(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateRequest{Name: "Sorriso"})
	require.NoError(t, err)

	et := db.ExamType.Create().SetName("Panoramic").SaveX(ctx)
	db.Exam.Create().
		SetClientID(c.ID).
		SetExamTypeID(et.ID).
		SetPatientName("Maria").
		SetSoftware("axel").
		SetClientValue(0).
		SetRadiologistValue(0).
		SetMargin(0).
		SaveX(ctx)

	require.ErrorIs(t, svc.Delete(ctx, c.ID), ErrHasExams)
}

func TestDeleteRemovesPriceEntries(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateRequest{Name: "Sorriso"})
	require.NoError(t, err)

	et := db.ExamType.Create().SetName("Panoramic").SaveX(ctx)
	db.ClientPrice.Create().
		SetClientID(c.ID).
		SetExamTypeID(et.ID).
		SetClientValue(5000).
		SaveX(ctx)

	require.NoError(t, svc.Delete(ctx, c.ID))
	require.Zero(t, db.ClientPrice.Query().Where(entcp.ClientID(c.ID)).CountX(ctx))
	_, err = svc.Get(ctx, c.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
