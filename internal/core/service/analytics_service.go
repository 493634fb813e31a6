package service

import (
	"context"
	"sort"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// analyticsSampleLimit bounds the listing the dashboard aggregates over.
const analyticsSampleLimit = 1000

// Dashboard is the aggregated view behind the admin analytics page.
type Dashboard struct {
	TotalEquipment  int              `json:"totalEquipment"`
	TotalCategories int              `json:"totalCategories"`
	InStock         int              `json:"inStock"`
	OutOfStock      int              `json:"outOfStock"`
	LowStock        int              `json:"lowStock"`
	TotalValue      float64          `json:"totalValue"`
	Categories      []CategoryCount  `json:"categories"`
	RecentActivity  []ActivityRecord `json:"recentActivity"`
}

// CategoryCount is one dashboard row per category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ActivityRecord is one row of the recent-additions feed.
type ActivityRecord struct {
	Action string `json:"action"`
	Item   string `json:"item"`
	Time   string `json:"time"`
}

// AnalyticsService aggregates catalog counts for the dashboard. The backend
// exposes no combined endpoint, so the counts are computed here from the
// equipment listing and the category list.
type AnalyticsService struct {
	equipment  ports.EquipmentAPI
	categories ports.CategoryAPI
}

func NewAnalyticsService(equipment ports.EquipmentAPI, categories ports.CategoryAPI) *AnalyticsService {
	return &AnalyticsService{equipment: equipment, categories: categories}
}

// Dashboard builds the aggregated admin view.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	page, err := s.equipment.List(ctx, ports.ListOptions{Limit: analyticsSampleLimit})
	if err != nil {
		return nil, err
	}

	out := &Dashboard{TotalEquipment: len(page.Items)}
	byCategory := map[string]int{}
	for _, item := range page.Items {
		switch item.Availability {
		case domain.AvailabilityInStock:
			out.InStock++
		case domain.AvailabilityOutOfStock:
			out.OutOfStock++
		}
		if item.BelowMinStock() {
			out.LowStock++
		}
		out.TotalValue += item.Price
		if item.CategoryName != "" {
			byCategory[item.CategoryName]++
		}
	}

	recent := make([]domain.Equipment, len(page.Items))
	copy(recent, page.Items)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, item := range recent {
		out.RecentActivity = append(out.RecentActivity, ActivityRecord{
			Action: "Equipment added",
			Item:   item.Name,
			Time:   item.CreatedAt.Format("2006-01-02"),
		})
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out.TotalCategories = len(cats)
	for _, cat := range cats {
		out.Categories = append(out.Categories, CategoryCount{
			Name:  cat.Name,
			Count: byCategory[cat.Name],
		})
	}

	return out, nil
}
