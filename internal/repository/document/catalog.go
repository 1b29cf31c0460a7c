package document

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

type catalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) ListServices(_ context.Context) ([]model.Service, error) {
	var out []model.Service
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Service{}, doc.Services...)
		return nil
	})
	return out, err
}

func (r *catalogRepository) GetService(_ context.Context, id string) (*model.Service, error) {
	var out *model.Service
	err := r.store.view(func(doc *model.Document) error {
		for i := range doc.Services {
			if doc.Services[i].ID == id {
				copied := doc.Services[i]
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

func (r *catalogRepository) UpsertService(ctx context.Context, service *model.Service) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.Services {
			if doc.Services[i].ID == service.ID {
				doc.Services[i] = *service
				return nil
			}
		}
		doc.Services = append(doc.Services, *service)
		return nil
	})
}

func (r *catalogRepository) DeleteService(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Services[:0]
		for _, s := range doc.Services {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		doc.Services = kept
		return nil
	})
}

func (r *catalogRepository) ListPrograms(_ context.Context) ([]model.Program, error) {
	var out []model.Program
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Program{}, doc.Programs...)
		return nil
	})
	return out, err
}

func (r *catalogRepository) UpsertProgram(ctx context.Context, program *model.Program) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.Programs {
			if doc.Programs[i].ID == program.ID {
				doc.Programs[i] = *program
				return nil
			}
		}
		doc.Programs = append(doc.Programs, *program)
		return nil
	})
}

func (r *catalogRepository) DeleteProgram(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Programs[:0]
		for _, p := range doc.Programs {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		doc.Programs = kept
		return nil
	})
}

func (r *catalogRepository) ListFacilities(_ context.Context) ([]model.Facility, error) {
	var out []model.Facility
	err := r.store.view(func(doc *model.Document) error {
		out = append([]model.Facility{}, doc.Facilities...)
		return nil
	})
	return out, err
}

func (r *catalogRepository) UpsertFacility(ctx context.Context, facility *model.Facility) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		for i := range doc.Facilities {
			if doc.Facilities[i].ID == facility.ID {
				doc.Facilities[i] = *facility
				return nil
			}
		}
		doc.Facilities = append(doc.Facilities, *facility)
		return nil
	})
}

func (r *catalogRepository) DeleteFacility(ctx context.Context, id string) error {
	return r.store.update(ctx, func(doc *model.Document) error {
		kept := doc.Facilities[:0]
		for _, f := range doc.Facilities {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		doc.Facilities = kept
		return nil
	})
}
