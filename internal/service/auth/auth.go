package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/raydent/raydent_backend/config"
	"github.com/raydent/raydent_backend/internal/repo"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/pkg/email"
	pasetotoken "github.com/raydent/raydent_backend/pkg/paseto"
	"github.com/raydent/raydent_backend/pkg/util/codes"
	"github.com/raydent/raydent_backend/pkg/util/password"
)

const resetCodeLength = 6

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyReset returns the Redis key for a password reset code hash.
func redisKeyReset(email string) string { return "pwreset:" + email }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type ResetPasswordRequest struct {
	Email       string
	Code        string
	NewPassword string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Register creates an account with no role. An admin grants the role
	// and clinic link afterwards.
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mail   *email.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mail:   mail,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.RoleNone).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = normalizeEmail(req.Email)

	u, err := s.db.User.Query().Where(entuser.Email(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counters
	now := time.Now()
	if _, err := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx); err != nil {
		slog.Warn("reset login counters", "user_id", u.ID, "err", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

func (s *authService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)

	u, err := s.db.User.Query().Where(entuser.Email(emailAddr)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Do not reveal whether the address exists.
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	code, err := codes.GenerateNumericCode(resetCodeLength)
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	ttl := time.Duration(s.cfg.Authentication.ResetTokenTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if err := s.rdb.Set(ctx, redisKeyReset(emailAddr), hashCode(code), ttl).Err(); err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}

	msg := email.BuildPasswordResetEmail(u.Email, u.Name, code, int(ttl.Minutes()))
	if err := s.mail.Send(ctx, msg); err != nil {
		// Log but don't fail; the caller can request another code.
		slog.Warn("send password reset email", "email", emailAddr, "err", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Code = strings.TrimSpace(req.Code)

	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	stored, err := s.rdb.Get(ctx, redisKeyReset(req.Email)).Result()
	if err == redis.Nil {
		return ErrResetCodeInvalid
	}
	if err != nil {
		return fmt.Errorf("redis get reset code: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(hashCode(req.Code))) != 1 {
		return ErrResetCodeInvalid
	}

	u, err := s.db.User.Query().Where(entuser.Email(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrResetCodeInvalid
		}
		return fmt.Errorf("find user: %w", err)
	}

	passHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.db.User.UpdateOne(u).
		SetPasswordHash(passHash).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.rdb.Del(ctx, redisKeyReset(req.Email))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}
	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	passHash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.User.UpdateOne(u).SetPasswordHash(passHash).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	maxAttempts := s.cfg.Authentication.MaxLoginAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	lockMins := s.cfg.Authentication.AccountLockMinutes
	if lockMins <= 0 {
		lockMins = 15
	}

	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).SetFailedLoginAttempts(attempts)
	if attempts >= maxAttempts {
		upd = upd.SetLockedUntil(time.Now().Add(time.Duration(lockMins) * time.Minute))
	}
	if _, err := upd.Save(ctx); err != nil {
		slog.Warn("record failed login", "user_id", u.ID, "err", err)
	}
}

func normalizeEmail(in string) string {
	return strings.ToLower(strings.TrimSpace(in))
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
