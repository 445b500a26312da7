package pricing

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raydent/raydent_backend/internal/repo"
	"github.com/raydent/raydent_backend/internal/repo/enttest"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestUpsertClientPrice(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	clientID := uuid.New()
	typeID := uuid.New()

	p, err := svc.UpsertClientPrice(ctx, UpsertClientPriceRequest{
		ClientID:    clientID,
		ExamTypeID:  typeID,
		ClientValue: 5000,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5000), p.ClientValue)

	// A second upsert for the same pair overwrites in place.
	p2, err := svc.UpsertClientPrice(ctx, UpsertClientPriceRequest{
		ClientID:    clientID,
		ExamTypeID:  typeID,
		ClientValue: 7500,
	})
	require.NoError(t, err)
	require.Equal(t, p.ID, p2.ID)
	require.Equal(t, int64(7500), p2.ClientValue)

	all, err := svc.ListClientPrices(ctx, &clientID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUpsertRejectsNegativeValue(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	_, err := svc.UpsertClientPrice(ctx, UpsertClientPriceRequest{
		ClientID:    uuid.New(),
		ExamTypeID:  uuid.New(),
		ClientValue: -1,
	})
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = svc.UpsertRadiologistPrice(ctx, UpsertRadiologistPriceRequest{
		ClientID:         uuid.New(),
		ExamTypeID:       uuid.New(),
		RadiologistID:    uuid.New(),
		RadiologistValue: -1,
	})
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestResolveMissingEntry(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	v, found, err := svc.ResolveClientValue(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, int64(0), v)

	_, err = svc.MustClientValue(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrPriceNotFound)
}

func TestRadiologistPriceIsPerRadiologist(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	clientID := uuid.New()
	typeID := uuid.New()
	radA := uuid.New()
	radB := uuid.New()

	_, err := svc.UpsertRadiologistPrice(ctx, UpsertRadiologistPriceRequest{
		ClientID: clientID, ExamTypeID: typeID, RadiologistID: radA, RadiologistValue: 3000,
	})
	require.NoError(t, err)
	_, err = svc.UpsertRadiologistPrice(ctx, UpsertRadiologistPriceRequest{
		ClientID: clientID, ExamTypeID: typeID, RadiologistID: radB, RadiologistValue: 4500,
	})
	require.NoError(t, err)

	v, found, err := svc.ResolveRadiologistValue(ctx, clientID, typeID, radA)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(3000), v)

	v, found, err = svc.ResolveRadiologistValue(ctx, clientID, typeID, radB)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(4500), v)
}

func TestDeletePrice(t *testing.T) {
	db := openClient(t)
	svc := New(db)
	ctx := context.Background()

	p, err := svc.UpsertClientPrice(ctx, UpsertClientPriceRequest{
		ClientID:    uuid.New(),
		ExamTypeID:  uuid.New(),
		ClientValue: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClientPrice(ctx, p.ID))
	require.ErrorIs(t, svc.DeleteClientPrice(ctx, p.ID), ErrEntryNotFound)
}
