package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type bookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) List(_ context.Context) ([]model.PatientBooking, error) {
	var out []model.PatientBooking
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.PatientBooking{}, doc.PatientBookings...)
		return nil
	})
	return out, err
}

func (r *bookingRepository) Get(_ context.Context, id string) (*model.PatientBooking, error) {
	var out *model.PatientBooking
	err := r.store.view(func(doc *model.Document) error {
		for i := range doc.PatientBookings {
			if doc.PatientBookings[i].ID == id {
				copied := doc.PatientBookings[i]
				out = &copied
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

// Insert prepends so the stored list stays newest first even when bookings
// share a timestamp.
func (r *bookingRepository) Insert(ctx context.Context, booking *model.PatientBooking) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.PatientBookings = append([]model.PatientBooking{*booking}, doc.PatientBookings...)
		return nil
	})
}

// UpdateStatus sets the status label only; every other field is untouched.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.PatientBookings {
			if doc.PatientBookings[i].ID == id {
				doc.PatientBookings[i].Status = status
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.PatientBookings[:0]
		for _, b := range doc.PatientBookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		doc.PatientBookings = kept
		return nil
	})
}
