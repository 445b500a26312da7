package user

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/raydent/raydent_backend/config"
	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entmp "github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	entrp "github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	entvacation "github.com/raydent/raydent_backend/internal/repo/vacation"
	"github.com/raydent/raydent_backend/pkg/authorize"
	"github.com/raydent/raydent_backend/pkg/database"
	"github.com/raydent/raydent_backend/pkg/email"
	"github.com/raydent/raydent_backend/pkg/util/password"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var knownSoftwares = map[string]struct{}{
	string(entexam.SoftwareAxel):   {},
	string(entexam.SoftwareMorita): {},
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ApproveRequest struct {
	Role      string
	ClientID  *uuid.UUID // required when Role == client
	Softwares []string   // viewer softwares, for radiologists
}

type UpdateRequest struct {
	Name      *string
	Softwares []string
	IsActive  *bool
}

type CreateRadiologistRequest struct {
	Name      string
	Email     string
	Password  string // empty means generate one and email it
	Softwares []string
}

type ListRequest struct {
	Role *string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)

	// Approve grants a pending account its role, clinic link and viewer
	// softwares, and mirrors the grant into Casbin.
	Approve(ctx context.Context, userID uuid.UUID, req ApproveRequest) (*repo.User, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error)

	CreateRadiologist(ctx context.Context, req CreateRadiologistRequest) (*repo.User, error)

	// Delete removes the user and every row hanging off it in one
	// transaction. Exams the user claimed go back to having no assignee.
	Delete(ctx context.Context, actorID, userID uuid.UUID) error
}

type userService struct {
	db        *repo.Client
	mail      *email.Client
	cfg       *config.Config
	authorize authorize.IAuthorization
}

func New(db *repo.Client, mail *email.Client, cfg *config.Config, authz authorize.IAuthorization) Service {
	return &userService{
		db:        db,
		mail:      mail,
		cfg:       cfg,
		authorize: authz,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	q := s.db.User.Query()
	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	users, err := q.Order(entuser.ByCreatedAt()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Approve(ctx context.Context, userID uuid.UUID, req ApproveRequest) (*repo.User, error) {
	role := entuser.Role(req.Role)
	switch role {
	case entuser.RoleAdmin, entuser.RoleRadiologist, entuser.RoleClient:
	default:
		return nil, ErrInvalidRole
	}
	if role == entuser.RoleClient && req.ClientID == nil {
		return nil, ErrClientRequired
	}
	if err := validateSoftwares(req.Softwares); err != nil {
		return nil, err
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.ClientID != nil {
		if _, err := s.db.Clinic.Get(ctx, *req.ClientID); err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrClientNotFound
			}
			return nil, fmt.Errorf("get client: %w", err)
		}
	}

	upd := s.db.User.UpdateOne(u).SetRole(role)
	if req.ClientID != nil {
		upd = upd.SetClientID(*req.ClientID)
	} else {
		upd = upd.ClearClientID()
	}
	if req.Softwares != nil {
		upd = upd.SetSoftwares(req.Softwares)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}

	// Previous role grouping, if any, is revoked before the new grant.
	if u.Role != entuser.RoleNone && u.Role != role {
		if err := authorize.RemoveAccountRole(ctx, s.authorize, u.ID.String(), string(u.Role)); err != nil {
			slog.Warn("revoke previous role", "user_id", u.ID, "role", u.Role, "err", err)
		}
	}
	if err := authorize.AssignAccountRole(ctx, s.authorize, u.ID.String(), string(role)); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}
	if role == entuser.RoleClient {
		if err := authorize.AssignClientMembership(ctx, s.authorize, u.ID.String(), req.ClientID.String()); err != nil {
			return nil, fmt.Errorf("assign clinic membership: %w", err)
		}
	}

	return updated, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	if err := validateSoftwares(req.Softwares); err != nil {
		return nil, err
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Softwares != nil {
		upd = upd.SetSoftwares(req.Softwares)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) CreateRadiologist(ctx context.Context, req CreateRadiologistRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Softwares) == 0 {
		return nil, ErrInvalidSoftware
	}
	if err := validateSoftwares(req.Softwares); err != nil {
		return nil, err
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	plain := req.Password
	generated := plain == ""
	if generated {
		plain = password.Generate(12)
	}
	passHash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *repo.User
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		u, err := tx.User.Create().
			SetName(req.Name).
			SetEmail(req.Email).
			SetPasswordHash(passHash).
			SetRole(entuser.RoleRadiologist).
			SetSoftwares(req.Softwares).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create radiologist: %w", err)
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := authorize.AssignAccountRole(ctx, s.authorize, created.ID.String(), string(entuser.RoleRadiologist)); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}
	if err := authorize.AssignUserSelfRole(ctx, s.authorize, created.ID.String()); err != nil {
		slog.Warn("assign self role", "user_id", created.ID, "err", err)
	}

	if generated && s.mail != nil {
		msg := email.BuildRadiologistWelcomeEmail(created.Email, created.Name, plain)
		if err := s.mail.Send(ctx, msg); err != nil {
			slog.Warn("send welcome email", "email", created.Email, "err", err)
		}
	}

	return created, nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return ErrSelfDelete
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.Exam.Update().
			Where(entexam.RadiologistID(userID)).
			ClearRadiologistID().
			Save(ctx); err != nil {
			return fmt.Errorf("detach exams: %w", err)
		}
		if _, err := tx.MeetingParticipant.Delete().
			Where(entmp.UserID(userID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete meeting participants: %w", err)
		}
		if _, err := tx.Vacation.Delete().
			Where(entvacation.UserID(userID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete vacations: %w", err)
		}
		if _, err := tx.RadiologistPrice.Delete().
			Where(entrp.RadiologistID(userID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete radiologist prices: %w", err)
		}
		if err := tx.User.DeleteOneID(userID).Exec(ctx); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Casbin cleanup is outside the DB transaction; a failure here only
	// leaves a dangling grouping row for an id that no longer logs in.
	if u.Role != entuser.RoleNone {
		if err := authorize.RemoveAccountRole(ctx, s.authorize, userID.String(), string(u.Role)); err != nil {
			slog.Warn("revoke role", "user_id", userID, "role", u.Role, "err", err)
		}
	}
	if u.Role == entuser.RoleClient && u.ClientID != nil {
		if err := authorize.RemoveClientMembership(ctx, s.authorize, userID.String(), u.ClientID.String()); err != nil {
			slog.Warn("revoke clinic membership", "user_id", userID, "err", err)
		}
	}

	return nil
}

func validateSoftwares(softwares []string) error {
	for _, sw := range softwares {
		if _, ok := knownSoftwares[sw]; !ok {
			return ErrInvalidSoftware
		}
	}
	if len(lo.FindDuplicates(softwares)) > 0 {
		return ErrInvalidSoftware
	}
	return nil
}
