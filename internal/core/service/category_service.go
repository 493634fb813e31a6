package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// CategoryService is the facade over the backend /categories endpoints.
type CategoryService struct {
	backend ports.Backend
	store   ports.TokenStore
}

func NewCategoryService(backend ports.Backend, store ports.TokenStore) *CategoryService {
	return &CategoryService{backend: backend, store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Get(ctx, "/categories", ro)
	if err != nil {
		return nil, err
	}
	var cats []domain.Category
	if err := decodeData(env.Data, "categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Get(ctx, "/categories/"+id, ro)
	if err != nil {
		return nil, err
	}
	return oneCategory(env)
}

func oneCategory(env *ports.Envelope) (*domain.Category, error) {
	var cat domain.Category
	if err := decodeData(env.Data, "category", &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Post(ctx, "/categories", input, ro)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("create category: %s", env.Message)
	}
	return oneCategory(env)
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Put(ctx, "/categories/"+id, input, ro)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("update category: %s", env.Message)
	}
	return oneCategory(env)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return err
	}
	_, err = s.backend.Delete(ctx, "/categories/"+id, ro)
	return err
}

// WithEquipment fetches a category together with a page of its equipment.
// page/limit <= 0 are omitted from the query string.
func (s *CategoryService) WithEquipment(ctx context.Context, id string, page, limit int) (*ports.CategoryEquipment, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if len(q) > 0 {
		ro.Query = q
	}

	env, err := s.backend.Get(ctx, "/categories/"+id+"/equipment", ro)
	if err != nil {
		return nil, err
	}

	var out ports.CategoryEquipment
	if err := decodeData(env.Data, "category", &out.Category); err != nil {
		return nil, err
	}
	if err := decodeData(env.Data, "equipment", &out.Equipment.Items); err != nil {
		return nil, err
	}
	out.Equipment.Pagination = env.Pagination
	return &out, nil
}

// Stats fetches the per-category overview rows.
func (s *CategoryService) Stats(ctx context.Context) ([]domain.CategoryStats, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Get(ctx, "/categories/stats/overview", ro)
	if err != nil {
		return nil, err
	}
	var stats []domain.CategoryStats
	if err := decodeData(env.Data, "categories", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
