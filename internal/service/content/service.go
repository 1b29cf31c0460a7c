package content

import (
	"context"
	"fmt"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.ContentRepository
}

func NewService(repo repository.ContentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetContent(ctx context.Context) (*model.ContentData, error) {
	content, err := s.repo.GetContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}

// UpdateContent replaces the whole content block. Partial edits are the admin
// console's concern.
func (s *Service) UpdateContent(ctx context.Context, content *model.ContentData) error {
	if err := s.repo.UpdateContent(ctx, content); err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}
	return nil
}

func (s *Service) GetMusic(ctx context.Context) (*model.MusicConfig, error) {
	music, err := s.repo.GetMusic(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get music config: %w", err)
	}
	return music, nil
}

func (s *Service) UpdateMusic(ctx context.Context, music *model.MusicConfig) error {
	switch music.SourceType {
	case model.MusicSourceYouTube, model.MusicSourceMP3:
	default:
		return apperrors.BadRequest(fmt.Sprintf("unknown music source %q", music.SourceType), nil)
	}
	if music.Volume < 0 || music.Volume > 100 {
		return apperrors.BadRequest("volume must be between 0 and 100", nil)
	}

	if err := s.repo.UpdateMusic(ctx, music); err != nil {
		return fmt.Errorf("failed to update music config: %w", err)
	}
	return nil
}

func (s *Service) GetChatConfig(ctx context.Context) (*model.ChatConfig, error) {
	cfg, err := s.repo.GetChatConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat config: %w", err)
	}
	return cfg, nil
}

func (s *Service) UpdateChatConfig(ctx context.Context, cfg *model.ChatConfig) error {
	if err := s.repo.UpdateChatConfig(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update chat config: %w", err)
	}
	return nil
}
