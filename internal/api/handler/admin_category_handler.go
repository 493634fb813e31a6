package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// AdminCategoryHandler proxies category management to the catalog backend.
type AdminCategoryHandler struct {
	categories ports.CategoryAPI
}

func NewAdminCategoryHandler(categories ports.CategoryAPI) *AdminCategoryHandler {
	return &AdminCategoryHandler{categories: categories}
}

// List handles GET /api/admin/categories.
//
// @Summary      List categories
// @Tags         admin-categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/admin/categories [get]
func (h *AdminCategoryHandler) List(c echo.Context) error {
	cats, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// Get handles GET /api/admin/categories/:id.
//
// @Summary      Get one category
// @Tags         admin-categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/categories/{id} [get]
func (h *AdminCategoryHandler) Get(c echo.Context) error {
	cat, err := h.categories.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Create handles POST /api/admin/categories.
//
// @Summary      Create category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/categories [post]
func (h *AdminCategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cat, err := h.categories.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

// Update handles PUT /api/admin/categories/:id.
//
// @Summary      Update category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/categories/{id} [put]
func (h *AdminCategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cat, err := h.categories.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Delete handles DELETE /api/admin/categories/:id.
//
// @Summary      Delete category
// @Tags         admin-categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  map[string]string
// @Router       /api/admin/categories/{id} [delete]
func (h *AdminCategoryHandler) Delete(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}

// Equipment handles GET /api/admin/categories/:id/equipment.
//
// @Summary      Category with its equipment
// @Tags         admin-categories
// @Produce      json
// @Param        id     path      string  true   "Category ID"
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  categoryEquipmentResponse
// @Router       /api/admin/categories/{id}/equipment [get]
func (h *AdminCategoryHandler) Equipment(c echo.Context) error {
	out, err := h.categories.WithEquipment(c.Request().Context(), c.Param("id"),
		intQuery(c, "page"), intQuery(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryEquipmentResponse{
		Category:   out.Category,
		Equipment:  out.Equipment.Items,
		Pagination: out.Equipment.Pagination,
	})
}

// Stats handles GET /api/admin/categories/stats.
//
// @Summary      Per-category overview
// @Tags         admin-categories
// @Produce      json
// @Success      200  {array}  domain.CategoryStats
// @Router       /api/admin/categories/stats [get]
func (h *AdminCategoryHandler) Stats(c echo.Context) error {
	stats, err := h.categories.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
