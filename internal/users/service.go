package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo     Repository
	val      *validation.Validator
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, val *validation.Validator, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		val:      val,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (string, error) {
	user, err := s.create(ctx, req, nil)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *Service) create(ctx context.Context, req CreateRequest, verifiedAt *time.Time) (User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Image = strings.TrimSpace(req.Image)
	req.Email = NormalizeEmail(req.Email)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := s.val.Check(req); err != nil {
		return User{}, err
	}
	if req.Role == "" {
		req.Role = auth.RoleUser
	}

	now := s.now().In(s.location)
	user := User{
		ID:            primitive.NewObjectID().Hex(),
		Name:          req.Name,
		Image:         req.Image,
		Email:         req.Email,
		EmailVerified: verifiedAt,
		IsAnonymous:   req.IsAnonymous,
		Role:          req.Role,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	user, found, err := s.repo.GetByID(ctx, id)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// SignIn resolves the identity behind a verified email address. The first
// sign-in creates the user; later ones only stamp the verification time if it
// was never set.
func (s *Service) SignIn(ctx context.Context, email string) (User, error) {
	email = NormalizeEmail(email)
	now := s.now().In(s.location)

	user, found, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if !found {
		user, err = s.create(ctx, CreateRequest{Email: email}, &now)
		if errors.Is(err, ErrEmailTaken) {
			// Lost a race with a concurrent first sign-in.
			return s.SignIn(ctx, email)
		}
		return user, err
	}
	if user.EmailVerified == nil {
		return s.repo.MarkEmailVerified(ctx, user.ID, now)
	}
	return user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
