package contacts

import (
	"context"
	"strings"
	"time"

	"vitrine-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notifier interface {
	SendContactRequestNotification(ctx context.Context, item ContactRequest) (string, error)
}

type Service struct {
	repo     Repository
	val      *validation.Validator
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, val *validation.Validator, location *time.Location, notifier Notifier) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		val:      val,
		location: location,
		notifier: notifier,
	}
}

// Create validates the form payload and stores it with status "new". The
// returned record carries the newly assigned ID. Nothing is written when
// validation fails.
func (s *Service) Create(ctx context.Context, req CreateRequest) (ContactRequest, error) {
	req = normalize(req)
	if err := s.validate(req); err != nil {
		return ContactRequest{}, err
	}

	item := ContactRequest{
		ID:          primitive.NewObjectID().Hex(),
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Phone:       req.Phone,
		Message:     req.Message,
		RequestType: req.RequestType,
		Status:      StatusNew,
		CreatedAt:   time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return ContactRequest{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]ContactRequest, error) {
	return s.repo.List(ctx)
}

// GetByID returns nil, without error, when the record does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*ContactRequest, error) {
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

func (s *Service) NotifyStaff(ctx context.Context, item ContactRequest) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendContactRequestNotification(ctx, item)
	return err
}

func (s *Service) validate(req CreateRequest) error {
	err := s.val.Check(req)
	if req.RequestType != TypeCallback || req.Phone != "" {
		return err
	}

	// Callback requests cannot be honoured without a number to call.
	ve, ok := validation.AsError(err)
	if err != nil && !ok {
		return err
	}
	if !ok {
		ve = &validation.Error{Fields: make(map[string]string, 1)}
	}
	ve.Fields["phone"] = "required_if"
	return ve
}

// phoneSeparators are the formatting characters people type into a phone
// field. They are dropped so only the digits and a leading + are validated
// and stored.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

func normalize(req CreateRequest) CreateRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Phone = phoneSeparators.Replace(strings.TrimSpace(req.Phone))
	req.Message = strings.TrimSpace(req.Message)
	req.RequestType = strings.ToLower(strings.TrimSpace(req.RequestType))
	return req
}
