package handler

import (
	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	State ports.SessionState        `json:"state"`
	User  *domain.AuthenticatedUser `json:"user,omitempty"`
}

// --- Admin equipment ---

type equipmentRequest struct {
	Name           string   `json:"name"           validate:"required"`
	Description    string   `json:"description"    validate:"required"`
	CategoryID     string   `json:"categoryId"     validate:"required"`
	Image          string   `json:"image"`
	Price          float64  `json:"price"          validate:"gte=0"`
	Availability   string   `json:"availability"   validate:"required,oneof='In Stock' 'Out of Stock' 'Low Stock'"`
	Specifications []string `json:"specifications"`
	Features       []string `json:"features"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Condition      string   `json:"condition"      validate:"omitempty,oneof=New Used Refurbished"`
	Warranty       string   `json:"warranty"`
	StockQuantity  int      `json:"stockQuantity"  validate:"gte=0"`
	MinStockLevel  int      `json:"minStockLevel"  validate:"gte=0"`
	IsPublic       *bool    `json:"isPublic"`
	IsFeatured     *bool    `json:"isFeatured"`
	SortOrder      int      `json:"sortOrder"`
	Tags           []string `json:"tags"`
}

func (r equipmentRequest) toInput() ports.EquipmentInput {
	return ports.EquipmentInput{
		Name:           r.Name,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		Image:          r.Image,
		Price:          r.Price,
		Availability:   r.Availability,
		Specifications: r.Specifications,
		Features:       r.Features,
		Brand:          r.Brand,
		Model:          r.Model,
		Condition:      r.Condition,
		Warranty:       r.Warranty,
		StockQuantity:  r.StockQuantity,
		MinStockLevel:  r.MinStockLevel,
		IsPublic:       r.IsPublic,
		IsFeatured:     r.IsFeatured,
		SortOrder:      r.SortOrder,
		Tags:           r.Tags,
	}
}

type equipmentListResponse struct {
	Data       []domain.Equipment `json:"data"`
	Pagination *ports.Pagination  `json:"pagination,omitempty"`
}

// --- Admin categories ---

type categoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sortOrder"   validate:"gte=0"`
}

func (r categoryRequest) toInput() ports.CategoryInput {
	return ports.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		SortOrder:   r.SortOrder,
	}
}

type categoryEquipmentResponse struct {
	Category   domain.Category    `json:"category"`
	Equipment  []domain.Equipment `json:"equipment"`
	Pagination *ports.Pagination  `json:"pagination,omitempty"`
}

// --- Profile ---

type profileUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin super_admin"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
	UserID          string `json:"userId"          validate:"required"`
}

// --- Public catalog ---

type quoteLinkResponse struct {
	URL string `json:"url"`
}
