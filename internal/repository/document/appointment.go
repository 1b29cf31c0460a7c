package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) List(_ context.Context) ([]model.Appointment, error) {
	var out []model.Appointment
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Appointment{}, doc.Appointments...)
		return nil
	})
	return out, err
}

func (r *appointmentRepository) Insert(ctx context.Context, appointment *model.Appointment) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.Appointments = append(doc.Appointments, *appointment)
		return nil
	})
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.Appointments {
			if doc.Appointments[i].ID == id {
				doc.Appointments[i].Status = status
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Appointments[:0]
		for _, a := range doc.Appointments {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		doc.Appointments = kept
		return nil
	})
}
