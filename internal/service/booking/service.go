// Package booking implements the patient booking flow against team member
// availability.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/serenitypath/hospital-api/internal/email"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	"github.com/serenitypath/hospital-api/pkg/confirm"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type Service struct {
	repo     repository.BookingRepository
	teamRepo repository.TeamRepository
	mailer   email.Sender
}

func NewService(repo repository.BookingRepository, teamRepo repository.TeamRepository, mailer email.Sender) *Service {
	return &Service{repo: repo, teamRepo: teamRepo, mailer: mailer}
}

// Submit records a new booking in pending state. The referenced slot is
// resolved once, here, and its display text snapshotted onto the booking; when
// the member or slot no longer exists the snapshot falls back to a
// placeholder. MemberID itself is stored without an existence check.
func (s *Service) Submit(ctx context.Context, req *model.SubmitBookingRequest) (*model.PatientBooking, error) {
	timeSlot := model.UnresolvedSlotDisplay
	if member, err := s.teamRepo.Get(ctx, req.MemberID); err == nil {
		if slot, ok := member.FindSlot(req.SlotID); ok {
			timeSlot = slot.Display()
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve member: %w", err)
	}

	booking := &model.PatientBooking{
		ID:           uuid.New().String(),
		PatientName:  req.Name,
		PatientEmail: req.Email,
		PatientPhone: req.Phone,
		Reason:       req.Reason,
		MemberID:     req.MemberID,
		Date:         req.Date,
		TimeSlot:     timeSlot,
		Status:       model.BookingStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking, nil
}

// List returns all bookings, newest first.
func (s *Service) List(ctx context.Context) ([]model.PatientBooking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// UpdateStatus sets the booking's status label. Any transition between the
// four labels is allowed, in either direction. Confirming a booking triggers a
// patient email; delivery failure is logged and does not fail the update.
func (s *Service) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.PatientBooking, error) {
	if !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown booking status %q", status), nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}

	if status == model.BookingStatusConfirmed {
		s.notifyConfirmed(ctx, booking)
	}
	return booking, nil
}

// Delete removes the booking after the caller's confirmer approves. Without
// approval the booking is left untouched.
func (s *Service) Delete(ctx context.Context, id string, confirmer confirm.Confirmer) error {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("booking", err)
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	prompt := fmt.Sprintf("delete booking for %s on %s", booking.PatientName, booking.Date)
	if confirmer == nil || !confirmer.Confirm(prompt) {
		return apperrors.ConfirmationRequired("deleting a booking")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (s *Service) notifyConfirmed(ctx context.Context, booking *model.PatientBooking) {
	memberName := "our team"
	if member, err := s.teamRepo.Get(ctx, booking.MemberID); err == nil {
		memberName = member.Name.In(model.LanguageEnglish)
	}

	if err := s.mailer.SendBookingConfirmed(booking, memberName); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("confirmation email failed")
	}
}
