package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.CatalogRepository
}

func NewService(repo repository.CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *Service) GetService(ctx context.Context, id string) (*model.Service, error) {
	service, err := s.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("service", err)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return service, nil
}

// UpsertService creates the service when id is blank, replaces it otherwise.
func (s *Service) UpsertService(ctx context.Context, id string, req *model.UpsertServiceRequest) (*model.Service, error) {
	if id == "" {
		id = uuid.New().String()
	}
	service := &model.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
	}
	if err := s.repo.UpsertService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to upsert service: %w", err)
	}
	return service, nil
}

func (s *Service) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *Service) ListPrograms(ctx context.Context) ([]model.Program, error) {
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (s *Service) UpsertProgram(ctx context.Context, id string, req *model.UpsertProgramRequest) (*model.Program, error) {
	if id == "" {
		id = uuid.New().String()
	}
	program := &model.Program{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Schedule:    req.Schedule,
		Image:       req.Image,
	}
	if err := s.repo.UpsertProgram(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to upsert program: %w", err)
	}
	return program, nil
}

func (s *Service) DeleteProgram(ctx context.Context, id string) error {
	if err := s.repo.DeleteProgram(ctx, id); err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	return nil
}

func (s *Service) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	facilities, err := s.repo.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	return facilities, nil
}

func (s *Service) UpsertFacility(ctx context.Context, id string, req *model.UpsertFacilityRequest) (*model.Facility, error) {
	if id == "" {
		id = uuid.New().String()
	}
	facility := &model.Facility{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.repo.UpsertFacility(ctx, facility); err != nil {
		return nil, fmt.Errorf("failed to upsert facility: %w", err)
	}
	return facility, nil
}

func (s *Service) DeleteFacility(ctx context.Context, id string) error {
	if err := s.repo.DeleteFacility(ctx, id); err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	return nil
}
