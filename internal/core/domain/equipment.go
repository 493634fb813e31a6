package domain

import "time"

// Availability is the stock state reported by the catalog backend.
type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
	AvailabilityLowStock   Availability = "Low Stock"
)

// Condition of a piece of equipment.
const (
	ConditionNew         = "New"
	ConditionUsed        = "Used"
	ConditionRefurbished = "Refurbished"
)

// Equipment mirrors the backend catalog entity. The portal references this
// data, it does not own it: no field is validated or derived locally beyond
// pass-through.
type Equipment struct {
	ID             string       `json:"_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	CategoryID     string       `json:"categoryId"`
	CategoryName   string       `json:"categoryName,omitempty"`
	Image          string       `json:"image"`
	Price          float64      `json:"price,omitempty"`
	Availability   Availability `json:"availability"`
	Specifications []string     `json:"specifications"`
	Features       []string     `json:"features"`
	Brand          string       `json:"brand,omitempty"`
	Model          string       `json:"model,omitempty"`
	Condition      string       `json:"condition"`
	Warranty       string       `json:"warranty,omitempty"`
	StockQuantity  int          `json:"stockQuantity"`
	MinStockLevel  int          `json:"minStockLevel"`
	IsPublic       bool         `json:"isPublic,omitempty"`
	IsFeatured     bool         `json:"isFeatured,omitempty"`
	Rating         float64      `json:"rating,omitempty"`
	ReviewCount    int          `json:"reviewCount,omitempty"`
	SortOrder      int          `json:"sortOrder,omitempty"`
	IsActive       bool         `json:"isActive,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	Slug           string       `json:"slug,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// BelowMinStock reports whether the item sits at or under its restock level.
func (e Equipment) BelowMinStock() bool {
	return e.StockQuantity > 0 && e.MinStockLevel > 0 && e.StockQuantity <= e.MinStockLevel
}

// EquipmentStats is the admin overview returned by the backend stats endpoint.
type EquipmentStats struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
	LowStock   int `json:"lowStock"`
	Featured   int `json:"featured"`
	Public     int `json:"public"`
}
