package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type contentRepository struct {
	store *Store
}

func NewContentRepository(store *Store) repository.ContentRepository {
	return &contentRepository{store: store}
}

func (r *contentRepository) GetContent(_ context.Context) (*model.ContentData, error) {
	var out model.ContentData
	err := r.store.view(func(doc *model.Document) error {
		out = doc.Content
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contentRepository) UpdateContent(ctx context.Context, content *model.ContentData) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.Content = *content
		return nil
	})
}

func (r *contentRepository) GetMusic(_ context.Context) (*model.MusicConfig, error) {
	var out model.MusicConfig
	err := r.store.view(func(doc *model.Document) error {
		out = doc.Music
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contentRepository) UpdateMusic(ctx context.Context, music *model.MusicConfig) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.Music = *music
		return nil
	})
}

func (r *contentRepository) GetChatConfig(_ context.Context) (*model.ChatConfig, error) {
	var out model.ChatConfig
	err := r.store.view(func(doc *model.Document) error {
		out = doc.ChatConfig
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contentRepository) UpdateChatConfig(ctx context.Context, cfg *model.ChatConfig) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		doc.ChatConfig = *cfg
		return nil
	})
}
