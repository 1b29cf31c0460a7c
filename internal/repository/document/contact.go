package document

import (
	"context"
	"strings"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type contactRepository struct {
	store *Store
}

func NewContactRepository(store *Store) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (r *contactRepository) ListRequests(_ context.Context) ([]model.ContactRequest, error) {
	var out []model.ContactRequest
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.ContactRequest{}, doc.ContactRequests...)
		return nil
	})
	return out, err
}

func (r *contactRepository) InsertRequest(ctx context.Context, req *model.ContactRequest) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.ContactRequests = append(doc.ContactRequests, *req)
		return nil
	})
}

func (r *contactRepository) UpdateRequestStatus(ctx context.Context, id string, status model.ContactStatus) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.ContactRequests {
			if doc.ContactRequests[i].ID == id {
				doc.ContactRequests[i].Status = status
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *contactRepository) DeleteRequest(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.ContactRequests[:0]
		for _, c := range doc.ContactRequests {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.ContactRequests = kept
		return nil
	})
}

func (r *contactRepository) ListSuggestions(_ context.Context) ([]model.Suggestion, error) {
	var out []model.Suggestion
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Suggestion{}, doc.Suggestions...)
		return nil
	})
	return out, err
}

func (r *contactRepository) InsertSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.Suggestions = append(doc.Suggestions, *suggestion)
		return nil
	})
}

func (r *contactRepository) DeleteSuggestion(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Suggestions[:0]
		for _, s := range doc.Suggestions {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		doc.Suggestions = kept
		return nil
	})
}

func (r *contactRepository) ListSubscribers(_ context.Context) ([]model.Subscriber, error) {
	var out []model.Subscriber
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Subscriber{}, doc.Subscribers...)
		return nil
	})
	return out, err
}

func (r *contactRepository) InsertSubscriber(ctx context.Context, sub *model.Subscriber) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for _, existing := range doc.Subscribers {
			if strings.EqualFold(existing.Email, sub.Email) {
				return ErrDuplicate
			}
		}
		doc.Subscribers = append(doc.Subscribers, *sub)
		return nil
	})
}

func (r *contactRepository) DeleteSubscriber(ctx context.Context, email string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Subscribers[:0]
		for _, s := range doc.Subscribers {
			if !strings.EqualFold(s.Email, email) {
				kept = append(kept, s)
			}
		}
		doc.Subscribers = kept
		return nil
	})
}
