package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type teamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) repository.TeamRepository {
	return &teamRepository{store: store}
}

func (r *teamRepository) List(_ context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.TeamMember{}, doc.Team...)
		return nil
	})
	return out, err
}

func (r *teamRepository) Get(_ context.Context, id string) (*model.TeamMember, error) {
	var out *model.TeamMember
	err := r.store.view(func(doc *model.Document) error {
		if m := doc.FindTeamMember(id); m != nil {
			copied := *m
			copied.Availability = append([]model.AvailabilitySlot{}, m.Availability...)
			out = &copied
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

func (r *teamRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.Team = append(doc.Team, *member)
		return nil
	})
}

func (r *teamRepository) Update(ctx context.Context, member *model.TeamMember) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.Team {
			if doc.Team[i].ID == member.ID {
				doc.Team[i] = *member
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the member. Bookings and sessions referencing the member are
// deliberately left in place; their memberId becomes a dangling reference.
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Team[:0]
		for _, m := range doc.Team {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		doc.Team = kept
		return nil
	})
}

func (r *teamRepository) AppendSlot(ctx context.Context, memberID string, slot model.AvailabilitySlot) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		member := doc.FindTeamMember(memberID)
		if member == nil {
			return ErrNotFound
		}
		member.Availability = append(member.Availability, slot)
		return nil
	})
}

// RemoveSlot is idempotent: removing an absent slot leaves the member
// unchanged and succeeds.
func (r *teamRepository) RemoveSlot(ctx context.Context, memberID, slotID string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		member := doc.FindTeamMember(memberID)
		if member == nil {
			return ErrNotFound
		}
		kept := member.Availability[:0]
		for _, s := range member.Availability {
			if s.ID != slotID {
				kept = append(kept, s)
			}
		}
		member.Availability = kept
		return nil
	})
}
