package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.ContactRepository
}

func NewService(repo repository.ContactRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRequests(ctx context.Context) ([]model.ContactRequest, error) {
	requests, err := s.repo.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return requests, nil
}

func (s *Service) SubmitRequest(ctx context.Context, req *model.CreateContactRequest) (*model.ContactRequest, error) {
	request := &model.ContactRequest{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    model.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to insert contact request: %w", err)
	}
	return request, nil
}

func (s *Service) UpdateRequestStatus(ctx context.Context, id string, status model.ContactStatus) error {
	if err := s.repo.UpdateRequestStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("contact request", err)
		}
		return fmt.Errorf("failed to update contact request: %w", err)
	}
	return nil
}

func (s *Service) DeleteRequest(ctx context.Context, id string) error {
	if err := s.repo.DeleteRequest(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact request: %w", err)
	}
	return nil
}

func (s *Service) ListSuggestions(ctx context.Context) ([]model.Suggestion, error) {
	suggestions, err := s.repo.ListSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

// SubmitSuggestion accepts anonymous feedback; a blank name is stored as
// "Anonymous".
func (s *Service) SubmitSuggestion(ctx context.Context, req *model.CreateSuggestionRequest) (*model.Suggestion, error) {
	name := req.Name
	if name == "" {
		name = "Anonymous"
	}
	suggestion := &model.Suggestion{
		ID:        uuid.New().String(),
		Name:      name,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertSuggestion(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to insert suggestion: %w", err)
	}
	return suggestion, nil
}

func (s *Service) DeleteSuggestion(ctx context.Context, id string) error {
	if err := s.repo.DeleteSuggestion(ctx, id); err != nil {
		return fmt.Errorf("failed to delete suggestion: %w", err)
	}
	return nil
}

// ListSubscribers returns the newsletter list, optionally narrowed to emails
// containing query.
func (s *Service) ListSubscribers(ctx context.Context, query string) ([]model.Subscriber, error) {
	subscribers, err := s.repo.ListSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	if query == "" {
		return subscribers, nil
	}

	query = strings.ToLower(query)
	matched := subscribers[:0]
	for _, sub := range subscribers {
		if strings.Contains(strings.ToLower(sub.Email), query) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

// Subscribe adds the email to the newsletter list. Duplicate emails are
// rejected, compared case-insensitively.
func (s *Service) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	sub := &model.Subscriber{Email: email, Date: time.Now().UTC()}
	if err := s.repo.InsertSubscriber(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email already subscribed", err)
		}
		return nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	if err := s.repo.DeleteSubscriber(ctx, email); err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}
