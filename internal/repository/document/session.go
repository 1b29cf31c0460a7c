package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type staffSessionRepository struct {
	store *Store
}

func NewStaffSessionRepository(store *Store) repository.StaffSessionRepository {
	return &staffSessionRepository{store: store}
}

func (r *staffSessionRepository) List(_ context.Context) ([]model.StaffSession, error) {
	var out []model.StaffSession
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.StaffSession{}, doc.StaffSessions...)
		return nil
	})
	return out, err
}

func (r *staffSessionRepository) ListByMember(_ context.Context, memberID string) ([]model.StaffSession, error) {
	out := []model.StaffSession{}
	err := r.store.view(func(doc *model.Document) error {
		for _, s := range doc.StaffSessions {
			if s.MemberID == memberID {
				out = append(out, s)
			}
		}
		return nil
	})
	return out, err
}

// Insert prepends so listings stay newest first without re-sorting ties.
func (r *staffSessionRepository) Insert(ctx context.Context, session *model.StaffSession) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.StaffSessions = append([]model.StaffSession{*session}, doc.StaffSessions...)
		return nil
	})
}

func (r *staffSessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.StaffSessions[:0]
		for _, s := range doc.StaffSessions {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		doc.StaffSessions = kept
		return nil
	})
}

type onlineSessionRepository struct {
	store *Store
}

func NewOnlineSessionRepository(store *Store) repository.OnlineSessionRepository {
	return &onlineSessionRepository{store: store}
}

func (r *onlineSessionRepository) List(_ context.Context) ([]model.OnlineSession, error) {
	var out []model.OnlineSession
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.OnlineSession{}, doc.OnlineSessions...)
		return nil
	})
	return out, err
}

func (r *onlineSessionRepository) Upsert(ctx context.Context, session *model.OnlineSession) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.OnlineSessions {
			if doc.OnlineSessions[i].ID == session.ID {
				doc.OnlineSessions[i] = *session
				return nil
			}
		}
		doc.OnlineSessions = append(doc.OnlineSessions, *session)
		return nil
	})
}

func (r *onlineSessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.OnlineSessions[:0]
		for _, s := range doc.OnlineSessions {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		doc.OnlineSessions = kept
		return nil
	})
}
