// Package clinic manages the dental clinics that submit exam orders.
package clinic

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entclinic "github.com/raydent/raydent_backend/internal/repo/clinic"
	entcp "github.com/raydent/raydent_backend/internal/repo/clientprice"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	"github.com/raydent/raydent_backend/pkg/database"
)

// reTaxID accepts a bare or punctuated CNPJ.
var reTaxID = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Softwares []string
}

type UpdateRequest struct {
	Name      *string
	TaxID     *string
	Email     *string
	Phone     *string
	IsActive  *bool
	Softwares []string
}

type ListRequest struct {
	Active *bool
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Clinic, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Clinic, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Clinic, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Clinic, error)

	// Delete removes the clinic and its price table entries in one
	// transaction. A clinic with exams on record cannot be removed.
	Delete(ctx context.Context, id uuid.UUID) error
}

type clinicService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clinicService{db: db}
}

func (s *clinicService) Create(ctx context.Context, req CreateRequest) (*repo.Clinic, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.TaxID != "" && !reTaxID.MatchString(req.TaxID) {
		return nil, ErrInvalidTaxID
	}
	if req.Email != "" && !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	if req.TaxID != "" {
		exists, err := s.db.Clinic.Query().
			Where(entclinic.TaxID(req.TaxID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check tax id: %w", err)
		}
		if exists {
			return nil, ErrTaxIDExists
		}
	}

	create := s.db.Clinic.Create().
		SetName(req.Name).
		SetSoftwares(req.Softwares)
	if req.TaxID != "" {
		create = create.SetTaxID(req.TaxID)
	}
	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) Get(ctx context.Context, id uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) List(ctx context.Context, req ListRequest) ([]*repo.Clinic, error) {
	q := s.db.Clinic.Query()
	if req.Active != nil {
		q = q.Where(entclinic.IsActive(*req.Active))
	}
	clinics, err := q.Order(entclinic.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	return clinics, nil
}

func (s *clinicService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Clinic, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.TaxID != nil && *req.TaxID != "" && !reTaxID.MatchString(*req.TaxID) {
		return nil, ErrInvalidTaxID
	}
	if req.Email != nil && *req.Email != "" && !reEmail.MatchString(*req.Email) {
		return nil, ErrInvalidEmail
	}

	upd := s.db.Clinic.UpdateOne(c)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.TaxID != nil {
		upd = upd.SetTaxID(*req.TaxID)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		upd = upd.SetPhone(*req.Phone)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}
	if req.Softwares != nil {
		upd = upd.SetSoftwares(req.Softwares)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}
	return updated, nil
}

func (s *clinicService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	hasExams, err := s.db.Exam.Query().Where(entexam.ClientID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check exams: %w", err)
	}
	if hasExams {
		return ErrHasExams
	}

	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.ClientPrice.Delete().
			Where(entcp.ClientID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete price entries: %w", err)
		}
		if err := tx.Clinic.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete clinic: %w", err)
		}
		return nil
	})
}
