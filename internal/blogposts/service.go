package blogposts

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
	req.Title = strings.TrimSpace(req.Title)
	req.Excerpt = strings.TrimSpace(req.Excerpt)
	req.Content = strings.TrimSpace(req.Content)
	req.Author = strings.TrimSpace(req.Author)
	req.Category = strings.TrimSpace(req.Category)
	req.Image = strings.TrimSpace(req.Image)
	if err := s.val.Check(req); err != nil {
		return "", err
	}

	post := BlogPost{
		ID:        primitive.NewObjectID().Hex(),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Image:     req.Image,
		Published: *req.Published,
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

// List returns every post, drafts included, newest first.
func (s *Service) List(ctx context.Context) ([]BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*BlogPost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	post, found, err := s.repo.GetByID(ctx, id)
	if err != nil || !found {
		return nil, err
	}
	return &post, nil
}
