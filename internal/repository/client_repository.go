package repository

import (
	"context"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/store"
)

type ClientRepository interface {
	GetAll(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (domain.Client, bool, error)
	GetByName(ctx context.Context, name string) (domain.Client, bool, error)
	Add(ctx context.Context, c domain.Client) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

type StoreClientRepository struct {
	s store.Store
}

func NewStoreClientRepository(s store.Store) *StoreClientRepository {
	return &StoreClientRepository{s: s}
}

func (r *StoreClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	return getAll[domain.Client](ctx, r.s, store.CollectionClients)
}

func (r *StoreClientRepository) GetByID(ctx context.Context, id string) (domain.Client, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Client{}, false, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, true, nil
		}
	}
	return domain.Client{}, false, nil
}

func (r *StoreClientRepository) GetByName(ctx context.Context, name string) (domain.Client, bool, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domain.Client{}, false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range items {
		if strings.ToLower(strings.TrimSpace(c.Name)) == want {
			return c, true, nil
		}
	}
	return domain.Client{}, false, nil
}

func (r *StoreClientRepository) Add(ctx context.Context, c domain.Client) error {
	return appendRow(ctx, r.s, store.CollectionClients, c)
}

func (r *StoreClientRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return patchByID(ctx, r.s, store.CollectionClients, id, patch)
}

func (r *StoreClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.s, store.CollectionClients, id)
}
