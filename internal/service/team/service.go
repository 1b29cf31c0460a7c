package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.TeamRepository
}

func NewService(repo repository.TeamRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (*model.TeamMember, error) {
	member, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("team member", err)
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

func (s *Service) CreateMember(ctx context.Context, req *model.CreateTeamMemberRequest) (*model.TeamMember, error) {
	member := &model.TeamMember{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		Image:        req.Image,
		Availability: []model.AvailabilitySlot{},
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return member, nil
}

func (s *Service) UpdateMember(ctx context.Context, id string, req *model.CreateTeamMemberRequest) (*model.TeamMember, error) {
	member, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = req.Name
	member.Role = req.Role
	member.Bio = req.Bio
	member.Email = req.Email
	member.Phone = req.Phone
	member.Image = req.Image

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return member, nil
}

// DeleteMember removes the member only. Bookings and sessions referencing the
// member keep their memberId and resolve to nothing afterwards.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	log.Info().Str("member_id", id).Msg("team member deleted, existing references left dangling")
	return nil
}
