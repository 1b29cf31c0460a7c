// Package appointment handles the legacy service-based appointment requests
// captured by the public contact form.
package appointment

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
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Create records an appointment request in pending state. ServiceID is stored
// as given; an empty value means a general visit.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Status:    model.AppointmentStatusPending,
		Persona:   model.PersonaPatient,
	}

	if err := s.repo.Insert(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
