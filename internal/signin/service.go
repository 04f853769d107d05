package signin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/notifications"
	"vitrine-backend/internal/users"
	"vitrine-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotConfigured = errors.New("sign-in not configured")
	ErrInvalidCode   = errors.New("invalid or expired code")
	ErrInvalidToken  = errors.New("invalid refresh token")
)

// Directory is the user store the sign-in flow resolves identities against.
type Directory interface {
	SignIn(ctx context.Context, email string) (users.User, error)
	GetByID(ctx context.Context, id string) (*users.User, error)
}

// Session is a signed-in user together with its token pair.
type Session struct {
	User         users.User
	AccessToken  string
	RefreshToken string
}

type Service struct {
	repo     Repository
	sender   notifications.VerificationSender
	users    Directory
	tokens   *auth.Manager
	val      *validation.Validator
	now      func() time.Time
	generate func() (string, error)
}

// NewService wires the sign-in flow. A nil sender or token manager leaves the
// flow disabled; every call then fails with ErrNotConfigured.
func NewService(repo Repository, sender notifications.VerificationSender, directory Directory, tokens *auth.Manager, val *validation.Validator) *Service {
	return &Service{
		repo:     repo,
		sender:   sender,
		users:    directory,
		tokens:   tokens,
		val:      val,
		now:      time.Now,
		generate: auth.GenerateVerificationToken,
	}
}

func (s *Service) Enabled() bool {
	return s.sender != nil && s.tokens != nil
}

// RequestCode issues a fresh code for the address and hands it to the
// delivery service. A code that could not be delivered is withdrawn and the
// delivery error is returned to the caller.
func (s *Service) RequestCode(ctx context.Context, req CodeRequest) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	req.Email = users.NormalizeEmail(req.Email)
	if err := s.val.Check(req); err != nil {
		return err
	}

	code, err := s.generate()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	hash, err := auth.HashSecret(code)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}

	now := s.now()
	token := VerificationToken{
		ID:         primitive.NewObjectID().Hex(),
		Identifier: req.Email,
		TokenHash:  hash,
		ExpiresAt:  now.Add(auth.VerificationTokenTTL),
		CreatedAt:  now,
	}
	if err := s.repo.Replace(ctx, token); err != nil {
		return err
	}

	if err := s.sender.SendVerificationRequest(ctx, req.Email, code); err != nil {
		if _, delErr := s.repo.Delete(context.WithoutCancel(ctx), token.ID); delErr != nil {
			return errors.Join(err, fmt.Errorf("withdraw undelivered code: %w", delErr))
		}
		return err
	}
	return nil
}

// VerifyCode consumes a pending code and signs the user in, creating the
// account on first use.
func (s *Service) VerifyCode(ctx context.Context, req VerifyRequest) (Session, error) {
	if !s.Enabled() {
		return Session{}, ErrNotConfigured
	}
	req.Email = users.NormalizeEmail(req.Email)
	if err := s.val.Check(req); err != nil {
		return Session{}, err
	}

	token, found, err := s.repo.Find(ctx, req.Email)
	if err != nil {
		return Session{}, err
	}
	if !found {
		return Session{}, ErrInvalidCode
	}
	if token.Expired(s.now()) {
		if _, err := s.repo.Delete(ctx, token.ID); err != nil {
			return Session{}, err
		}
		return Session{}, ErrInvalidCode
	}

	// An attempt is reserved before the comparison, so concurrent guesses
	// never exceed MaxVerifyAttempts.
	id := token.ID
	token, ok, err := s.repo.ReserveAttempt(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		if _, err := s.repo.Delete(ctx, id); err != nil {
			return Session{}, err
		}
		return Session{}, ErrInvalidCode
	}
	if err := auth.CompareSecret(token.TokenHash, req.Code); err != nil {
		if token.Attempts >= MaxVerifyAttempts {
			if _, err := s.repo.Delete(ctx, id); err != nil {
				return Session{}, err
			}
		}
		return Session{}, ErrInvalidCode
	}
	consumed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if !consumed {
		return Session{}, ErrInvalidCode
	}

	user, err := s.users.SignIn(ctx, req.Email)
	if err != nil {
		return Session{}, err
	}
	return s.issue(user)
}

// Refresh exchanges a refresh token for a new pair. The role is re-read from
// the user store so demotions take effect on the next refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if s.tokens == nil {
		return Session{}, ErrNotConfigured
	}
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil || claims.Kind != auth.KindRefresh {
		return Session{}, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return Session{}, err
	}
	if user == nil {
		return Session{}, ErrInvalidToken
	}
	return s.issue(*user)
}

func (s *Service) issue(user users.User) (Session, error) {
	session := auth.Session{UserID: user.ID, Email: user.Email, Role: user.Role}
	access, err := s.tokens.NewAccessToken(session)
	if err != nil {
		return Session{}, fmt.Errorf("access token: %w", err)
	}
	refresh, err := s.tokens.NewRefreshToken(session)
	if err != nil {
		return Session{}, fmt.Errorf("refresh token: %w", err)
	}
	return Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
