// Package session covers both staff activity log entries and publicly
// announced online sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	staffRepo  repository.StaffSessionRepository
	onlineRepo repository.OnlineSessionRepository
	teamRepo   repository.TeamRepository
}

func NewService(staffRepo repository.StaffSessionRepository, onlineRepo repository.OnlineSessionRepository, teamRepo repository.TeamRepository) *Service {
	return &Service{staffRepo: staffRepo, onlineRepo: onlineRepo, teamRepo: teamRepo}
}

// ListStaffSessions returns activity entries, newest first, optionally
// narrowed to one member.
func (s *Service) ListStaffSessions(ctx context.Context, memberID string) ([]model.StaffSession, error) {
	var (
		sessions []model.StaffSession
		err      error
	)
	if memberID != "" {
		sessions, err = s.staffRepo.ListByMember(ctx, memberID)
	} else {
		sessions, err = s.staffRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list staff sessions: %w", err)
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// CreateStaffSession records an activity entry. The member must exist at
// creation time; the reference is not maintained afterwards.
func (s *Service) CreateStaffSession(ctx context.Context, req *model.CreateStaffSessionRequest) (*model.StaffSession, error) {
	if _, err := s.teamRepo.Get(ctx, req.MemberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("team member", err)
		}
		return nil, fmt.Errorf("failed to resolve member: %w", err)
	}

	now := time.Now().UTC()
	session := &model.StaffSession{
		ID:        uuid.New().String(),
		MemberID:  req.MemberID,
		Title:     req.Title,
		Type:      req.Type,
		Content:   req.Content,
		Date:      req.Date,
		CreatedAt: now,
	}
	if session.Date == "" {
		session.Date = now.Format("2006-01-02")
	}

	if err := s.staffRepo.Insert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to insert staff session: %w", err)
	}
	return session, nil
}

func (s *Service) DeleteStaffSession(ctx context.Context, id string) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("staff session", err)
		}
		return fmt.Errorf("failed to delete staff session: %w", err)
	}
	return nil
}

func (s *Service) ListOnlineSessions(ctx context.Context) ([]model.OnlineSession, error) {
	sessions, err := s.onlineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list online sessions: %w", err)
	}
	return sessions, nil
}

// UpsertOnlineSession creates or replaces an announced session. A blank id
// means create.
func (s *Service) UpsertOnlineSession(ctx context.Context, id string, req *model.UpsertOnlineSessionRequest) (*model.OnlineSession, error) {
	if id == "" {
		id = uuid.New().String()
	}

	session := &model.OnlineSession{
		ID:          id,
		MemberID:    req.MemberID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Platform:    req.Platform,
		MeetingLink: req.MeetingLink,
		SocialLinks: req.SocialLinks,
		Status:      req.Status,
	}
	if session.Platform == "" {
		session.Platform = model.PlatformInHouse
	}
	if session.Status == "" {
		session.Status = model.OnlineSessionScheduled
	}

	if err := s.onlineRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to upsert online session: %w", err)
	}
	return session, nil
}

func (s *Service) DeleteOnlineSession(ctx context.Context, id string) error {
	if err := s.onlineRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("online session", err)
		}
		return fmt.Errorf("failed to delete online session: %w", err)
	}
	return nil
}
