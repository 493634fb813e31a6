package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// EquipmentService is the facade over the backend /equipment endpoints.
type EquipmentService struct {
	backend ports.Backend
	store   ports.TokenStore
}

func NewEquipmentService(backend ports.Backend, store ports.TokenStore) *EquipmentService {
	return &EquipmentService{backend: backend, store: store}
}

// List fetches the admin listing. Only fields actually set on opts make it
// into the query string.
func (s *EquipmentService) List(ctx context.Context, opts ports.ListOptions) (*ports.EquipmentPage, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.CategoryID != "" {
		q.Set("categoryId", opts.CategoryID)
	}
	if opts.Availability != "" {
		q.Set("availability", opts.Availability)
	}

	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	ro.Query = q

	env, err := s.backend.Get(ctx, "/equipment", ro)
	if err != nil {
		return nil, err
	}
	return equipmentPage(env)
}

// ListPublic fetches the public catalog listing. No token.
func (s *EquipmentService) ListPublic(ctx context.Context, opts ports.PublicListOptions) (*ports.EquipmentPage, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}

	env, err := s.backend.Get(ctx, "/equipment/public", &ports.RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	return equipmentPage(env)
}

func equipmentPage(env *ports.Envelope) (*ports.EquipmentPage, error) {
	var items []domain.Equipment
	if err := decodeData(env.Data, "equipment", &items); err != nil {
		return nil, err
	}
	return &ports.EquipmentPage{Items: items, Pagination: env.Pagination}, nil
}

// Get fetches one item through the admin endpoint.
func (s *EquipmentService) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Get(ctx, "/equipment/"+id, ro)
	if err != nil {
		return nil, err
	}
	return oneEquipment(env)
}

// GetPublic fetches one item through the public endpoint.
func (s *EquipmentService) GetPublic(ctx context.Context, id string) (*domain.Equipment, error) {
	env, err := s.backend.Get(ctx, "/equipment/public/"+id, nil)
	if err != nil {
		return nil, err
	}
	return oneEquipment(env)
}

func oneEquipment(env *ports.Envelope) (*domain.Equipment, error) {
	var item domain.Equipment
	if err := decodeData(env.Data, "equipment", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create proxies a new item to the backend as JSON.
func (s *EquipmentService) Create(ctx context.Context, input ports.EquipmentInput) (*domain.Equipment, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Post(ctx, "/equipment", input, ro)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("create equipment: %s", env.Message)
	}
	return oneEquipment(env)
}

// Update proxies changes to an existing item.
func (s *EquipmentService) Update(ctx context.Context, id string, input ports.EquipmentInput) (*domain.Equipment, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Put(ctx, "/equipment/"+id, input, ro)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("update equipment: %s", env.Message)
	}
	return oneEquipment(env)
}

// Delete removes an item.
func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return err
	}
	_, err = s.backend.Delete(ctx, "/equipment/"+id, ro)
	return err
}

// Search runs the public free-text search.
func (s *EquipmentService) Search(ctx context.Context, query string) ([]domain.Equipment, error) {
	q := url.Values{}
	q.Set("q", query)

	env, err := s.backend.Get(ctx, "/equipment/search", &ports.RequestOptions{Query: q})
	if err != nil {
		return nil, err
	}
	var items []domain.Equipment
	if err := decodeData(env.Data, "equipment", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Featured fetches the homepage picks. limit <= 0 omits the parameter.
func (s *EquipmentService) Featured(ctx context.Context, limit int) ([]domain.Equipment, error) {
	var ro *ports.RequestOptions
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		ro = &ports.RequestOptions{Query: q}
	}

	env, err := s.backend.Get(ctx, "/equipment/featured", ro)
	if err != nil {
		return nil, err
	}
	var items []domain.Equipment
	if err := decodeData(env.Data, "equipment", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Categories fetches the public category list exposed under /equipment.
func (s *EquipmentService) Categories(ctx context.Context) ([]domain.Category, error) {
	env, err := s.backend.Get(ctx, "/equipment/categories", nil)
	if err != nil {
		return nil, err
	}
	var cats []domain.Category
	if err := decodeData(env.Data, "categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Stats fetches the admin overview counters.
func (s *EquipmentService) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	ro, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Get(ctx, "/equipment/stats/overview", ro)
	if err != nil {
		return nil, err
	}
	var stats domain.EquipmentStats
	if err := decodeData(env.Data, "stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
