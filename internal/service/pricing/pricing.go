package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entcp "github.com/raydent/raydent_backend/internal/repo/clientprice"
	entrp "github.com/raydent/raydent_backend/internal/repo/radiologistprice"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertClientPriceRequest struct {
	ClientID    uuid.UUID
	ExamTypeID  uuid.UUID
	ClientValue int64 // centavos
}

type UpsertRadiologistPriceRequest struct {
	ClientID         uuid.UUID
	ExamTypeID       uuid.UUID
	RadiologistID    uuid.UUID
	RadiologistValue int64 // centavos
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ResolveClientValue returns the billed amount for (client, examType).
	// The bool reports whether a price entry matched; absent entries
	// resolve to zero without error.
	ResolveClientValue(ctx context.Context, clientID, examTypeID uuid.UUID) (int64, bool, error)

	// ResolveRadiologistValue returns the payout for (client, examType,
	// radiologist), zero and false when no entry matches.
	ResolveRadiologistValue(ctx context.Context, clientID, examTypeID, radiologistID uuid.UUID) (int64, bool, error)

	// MustClientValue is the strict variant: ErrPriceNotFound when absent.
	MustClientValue(ctx context.Context, clientID, examTypeID uuid.UUID) (int64, error)

	UpsertClientPrice(ctx context.Context, req UpsertClientPriceRequest) (*repo.ClientPrice, error)
	UpsertRadiologistPrice(ctx context.Context, req UpsertRadiologistPriceRequest) (*repo.RadiologistPrice, error)

	ListClientPrices(ctx context.Context, clientID *uuid.UUID) ([]*repo.ClientPrice, error)
	ListRadiologistPrices(ctx context.Context, radiologistID *uuid.UUID) ([]*repo.RadiologistPrice, error)

	DeleteClientPrice(ctx context.Context, id uuid.UUID) error
	DeleteRadiologistPrice(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type pricingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &pricingService{db: db}
}

func (s *pricingService) ResolveClientValue(ctx context.Context, clientID, examTypeID uuid.UUID) (int64, bool, error) {
	p, err := s.db.ClientPrice.Query().
		Where(entcp.ClientID(clientID), entcp.ExamTypeID(examTypeID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("resolve client value: %w", err)
	}
	return p.ClientValue, true, nil
}

func (s *pricingService) ResolveRadiologistValue(ctx context.Context, clientID, examTypeID, radiologistID uuid.UUID) (int64, bool, error) {
	p, err := s.db.RadiologistPrice.Query().
		Where(
			entrp.ClientID(clientID),
			entrp.ExamTypeID(examTypeID),
			entrp.RadiologistID(radiologistID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("resolve radiologist value: %w", err)
	}
	return p.RadiologistValue, true, nil
}

func (s *pricingService) MustClientValue(ctx context.Context, clientID, examTypeID uuid.UUID) (int64, error) {
	v, found, err := s.ResolveClientValue(ctx, clientID, examTypeID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrPriceNotFound
	}
	return v, nil
}

// UpsertClientPrice overwrites the entry for (client, examType) or inserts
// a new one. No price history is kept; existing exam snapshots are never
// touched.
func (s *pricingService) UpsertClientPrice(ctx context.Context, req UpsertClientPriceRequest) (*repo.ClientPrice, error) {
	if req.ClientValue < 0 {
		return nil, ErrInvalidValue
	}

	existing, err := s.db.ClientPrice.Query().
		Where(entcp.ClientID(req.ClientID), entcp.ExamTypeID(req.ExamTypeID)).
		Only(ctx)
	switch {
	case err == nil:
		return s.db.ClientPrice.UpdateOne(existing).
			SetClientValue(req.ClientValue).
			Save(ctx)
	case repo.IsNotFound(err):
		return s.db.ClientPrice.Create().
			SetClientID(req.ClientID).
			SetExamTypeID(req.ExamTypeID).
			SetClientValue(req.ClientValue).
			Save(ctx)
	default:
		return nil, fmt.Errorf("upsert client price: %w", err)
	}
}

func (s *pricingService) UpsertRadiologistPrice(ctx context.Context, req UpsertRadiologistPriceRequest) (*repo.RadiologistPrice, error) {
	if req.RadiologistValue < 0 {
		return nil, ErrInvalidValue
	}

	existing, err := s.db.RadiologistPrice.Query().
		Where(
			entrp.ClientID(req.ClientID),
			entrp.ExamTypeID(req.ExamTypeID),
			entrp.RadiologistID(req.RadiologistID),
		).
		Only(ctx)
	switch {
	case err == nil:
		return s.db.RadiologistPrice.UpdateOne(existing).
			SetRadiologistValue(req.RadiologistValue).
			Save(ctx)
	case repo.IsNotFound(err):
		return s.db.RadiologistPrice.Create().
			SetClientID(req.ClientID).
			SetExamTypeID(req.ExamTypeID).
			SetRadiologistID(req.RadiologistID).
			SetRadiologistValue(req.RadiologistValue).
			Save(ctx)
	default:
		return nil, fmt.Errorf("upsert radiologist price: %w", err)
	}
}

func (s *pricingService) ListClientPrices(ctx context.Context, clientID *uuid.UUID) ([]*repo.ClientPrice, error) {
	q := s.db.ClientPrice.Query()
	if clientID != nil {
		q = q.Where(entcp.ClientID(*clientID))
	}
	prices, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client prices: %w", err)
	}
	return prices, nil
}

func (s *pricingService) ListRadiologistPrices(ctx context.Context, radiologistID *uuid.UUID) ([]*repo.RadiologistPrice, error) {
	q := s.db.RadiologistPrice.Query()
	if radiologistID != nil {
		q = q.Where(entrp.RadiologistID(*radiologistID))
	}
	prices, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list radiologist prices: %w", err)
	}
	return prices, nil
}

func (s *pricingService) DeleteClientPrice(ctx context.Context, id uuid.UUID) error {
	err := s.db.ClientPrice.DeleteOneID(id).Exec(ctx)
	if repo.IsNotFound(err) {
		return ErrEntryNotFound
	}
	return err
}

func (s *pricingService) DeleteRadiologistPrice(ctx context.Context, id uuid.UUID) error {
	err := s.db.RadiologistPrice.DeleteOneID(id).Exec(ctx)
	if repo.IsNotFound(err) {
		return ErrEntryNotFound
	}
	return err
}
