package domain

import "time"

// Category mirrors the backend catalog category entity.
type Category struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	EquipmentCount int       `json:"equipmentCount,omitempty"`
	SortOrder      int       `json:"sortOrder,omitempty"`
	IsActive       bool      `json:"isActive,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CategoryStats is one row of the per-category overview endpoint.
type CategoryStats struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	EquipmentCount int    `json:"equipmentCount"`
}
