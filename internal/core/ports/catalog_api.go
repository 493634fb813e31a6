package ports

import (
	"context"
	"io"

	"github.com/hafaksurgicals/portal/internal/core/domain"
)

// ListOptions filters the admin equipment listing. Zero-valued fields are
// omitted from the query string entirely, never sent as empty strings.
type ListOptions struct {
	Page         int
	Limit        int
	Search       string
	CategoryID   string
	Availability string
}

// PublicListOptions filters the public catalog listing.
type PublicListOptions struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// EquipmentInput is the create/update payload proxied to the backend.
type EquipmentInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CategoryID     string   `json:"categoryId"`
	Image          string   `json:"image,omitempty"`
	Price          float64  `json:"price,omitempty"`
	Availability   string   `json:"availability"`
	Specifications []string `json:"specifications,omitempty"`
	Features       []string `json:"features,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	Model          string   `json:"model,omitempty"`
	Condition      string   `json:"condition,omitempty"`
	Warranty       string   `json:"warranty,omitempty"`
	StockQuantity  int      `json:"stockQuantity"`
	MinStockLevel  int      `json:"minStockLevel"`
	IsPublic       *bool    `json:"isPublic,omitempty"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	SortOrder      int      `json:"sortOrder,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// EquipmentPage pairs a listing with the backend's pagination descriptor.
type EquipmentPage struct {
	Items      []domain.Equipment
	Pagination *Pagination
}

// EquipmentAPI is the facade over the backend /equipment endpoints, one
// method per endpoint and verb.
type EquipmentAPI interface {
	List(ctx context.Context, opts ListOptions) (*EquipmentPage, error)
	ListPublic(ctx context.Context, opts PublicListOptions) (*EquipmentPage, error)
	Get(ctx context.Context, id string) (*domain.Equipment, error)
	GetPublic(ctx context.Context, id string) (*domain.Equipment, error)
	Create(ctx context.Context, input EquipmentInput) (*domain.Equipment, error)
	Update(ctx context.Context, id string, input EquipmentInput) (*domain.Equipment, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.Equipment, error)
	Featured(ctx context.Context, limit int) ([]domain.Equipment, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Stats(ctx context.Context) (*domain.EquipmentStats, error)
}

// CategoryInput is the create/update payload for categories.
type CategoryInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sortOrder,omitempty"`
}

// CategoryEquipment is the combined view of a category and its equipment.
type CategoryEquipment struct {
	Category  domain.Category
	Equipment EquipmentPage
}

// CategoryAPI is the facade over the backend /categories endpoints.
type CategoryAPI interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	WithEquipment(ctx context.Context, id string, page, limit int) (*CategoryEquipment, error)
	Stats(ctx context.Context) ([]domain.CategoryStats, error)
}

// UploadedImage is the backend's record of a stored image.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// UploadAPI pushes image binaries through to the backend upload endpoint.
type UploadAPI interface {
	UploadImage(ctx context.Context, filename string, content io.Reader) (*UploadedImage, error)
}
