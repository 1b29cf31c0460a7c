// Package availability manages the recurring weekly slots owned by team
// members.
package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

// SlotPolicy decides whether a candidate slot may join a member's existing
// ones. The default policy accepts everything, including overlapping and
// inverted windows; stricter deployments can swap in their own.
type SlotPolicy interface {
	Check(existing []model.AvailabilitySlot, candidate model.AvailabilitySlot) error
}

// PolicyFunc adapts a function to a SlotPolicy.
type PolicyFunc func(existing []model.AvailabilitySlot, candidate model.AvailabilitySlot) error

func (f PolicyFunc) Check(existing []model.AvailabilitySlot, candidate model.AvailabilitySlot) error {
	return f(existing, candidate)
}

// AcceptAll is the default policy.
func AcceptAll() SlotPolicy {
	return PolicyFunc(func([]model.AvailabilitySlot, model.AvailabilitySlot) error { return nil })
}

type Service struct {
	repo   repository.TeamRepository
	policy SlotPolicy
}

func NewService(repo repository.TeamRepository, policy SlotPolicy) *Service {
	if policy == nil {
		policy = AcceptAll()
	}
	return &Service{repo: repo, policy: policy}
}

// AddSlot appends a new recurring slot to the member's availability. The slot
// receives a fresh id; the input times are stored verbatim.
func (s *Service) AddSlot(ctx context.Context, memberID string, req *model.AddSlotRequest) (*model.AvailabilitySlot, error) {
	member, err := s.repo.Get(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("team member", err)
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	slot := model.AvailabilitySlot{
		ID:        uuid.New().String(),
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.policy.Check(member.Availability, slot); err != nil {
		return nil, apperrors.BadRequest("slot rejected by policy", err)
	}

	if err := s.repo.AppendSlot(ctx, memberID, slot); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("team member", err)
		}
		return nil, fmt.Errorf("failed to add slot: %w", err)
	}
	return &slot, nil
}

// RemoveSlot deletes the slot from the member. Removing an unknown slot id is
// a no-op; existing bookings keep their snapshotted timeSlot text.
func (s *Service) RemoveSlot(ctx context.Context, memberID, slotID string) error {
	if err := s.repo.RemoveSlot(ctx, memberID, slotID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("team member", err)
		}
		return fmt.Errorf("failed to remove slot: %w", err)
	}
	return nil
}
