package casestudies

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
	return &Service{
		repo:     repo,
		val:      val,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (string, error) {
	req = normalize(req)
	if err := s.val.Check(req); err != nil {
		return "", err
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}

	item := CaseStudy{
		ID:        primitive.NewObjectID().Hex(),
		Title:     req.Title,
		Client:    req.Client,
		Industry:  req.Industry,
		Challenge: req.Challenge,
		Solution:  req.Solution,
		Results:   req.Results,
		Metrics:   req.Metrics,
		Image:     req.Image,
		Featured:  featured,
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (s *Service) List(ctx context.Context) ([]CaseStudy, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*CaseStudy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	item, found, err := s.repo.GetByID(ctx, id)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func normalize(req CreateRequest) CreateRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Client = strings.TrimSpace(req.Client)
	req.Industry = strings.TrimSpace(req.Industry)
	req.Challenge = strings.TrimSpace(req.Challenge)
	req.Solution = strings.TrimSpace(req.Solution)
	req.Image = strings.TrimSpace(req.Image)

	results := make([]string, len(req.Results))
	for i, r := range req.Results {
		results[i] = strings.TrimSpace(r)
	}
	req.Results = results

	metrics := make([]Metric, len(req.Metrics))
	for i, m := range req.Metrics {
		metrics[i] = Metric{Label: strings.TrimSpace(m.Label), Value: strings.TrimSpace(m.Value)}
	}
	req.Metrics = metrics
	return req
}
