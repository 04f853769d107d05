package companies

import (
	"context"
	"strings"
	"time"

	"vitrine-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo     Repository
	val      *validation.Validator
	location *time.Location
}

func NewService(repo Repository, val *validation.Validator, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{repo: repo, val: val, location: location}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Logo = strings.TrimSpace(req.Logo)
	req.Industry = strings.TrimSpace(req.Industry)
	if err := s.val.Check(req); err != nil {
		return "", err
	}

	company := Company{
		ID:        primitive.NewObjectID().Hex(),
		Name:      req.Name,
		Logo:      req.Logo,
		Industry:  req.Industry,
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return "", err
	}
	return company.ID, nil
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	company, found, err := s.repo.GetByID(ctx, id)
	if err != nil || !found {
		return nil, err
	}
	return &company, nil
}
