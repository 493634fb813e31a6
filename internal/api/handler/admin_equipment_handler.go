package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// AdminEquipmentHandler proxies equipment management to the catalog backend.
// All routes sit behind the session guard.
type AdminEquipmentHandler struct {
	equipment ports.EquipmentAPI
}

func NewAdminEquipmentHandler(equipment ports.EquipmentAPI) *AdminEquipmentHandler {
	return &AdminEquipmentHandler{equipment: equipment}
}

// List handles GET /api/admin/equipment.
//
// @Summary      List equipment (admin)
// @Tags         admin-equipment
// @Produce      json
// @Param        page          query     int     false  "Page number"
// @Param        limit         query     int     false  "Page size"
// @Param        search        query     string  false  "Free-text search"
// @Param        categoryId    query     string  false  "Category filter"
// @Param        availability  query     string  false  "Availability filter"
// @Success      200           {object}  equipmentListResponse
// @Failure      401           {object}  errorResponse
// @Router       /api/admin/equipment [get]
func (h *AdminEquipmentHandler) List(c echo.Context) error {
	opts := ports.ListOptions{
		Page:         intQuery(c, "page"),
		Limit:        intQuery(c, "limit"),
		Search:       c.QueryParam("search"),
		CategoryID:   c.QueryParam("categoryId"),
		Availability: c.QueryParam("availability"),
	}

	page, err := h.equipment.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, equipmentListResponse{Data: page.Items, Pagination: page.Pagination})
}

// Get handles GET /api/admin/equipment/:id.
//
// @Summary      Get one equipment item (admin)
// @Tags         admin-equipment
// @Produce      json
// @Param        id   path      string  true  "Equipment ID"
// @Success      200  {object}  domain.Equipment
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/equipment/{id} [get]
func (h *AdminEquipmentHandler) Get(c echo.Context) error {
	item, err := h.equipment.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/admin/equipment.
//
// @Summary      Create equipment
// @Tags         admin-equipment
// @Accept       json
// @Produce      json
// @Param        body  body      equipmentRequest  true  "Equipment details"
// @Success      201   {object}  domain.Equipment
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/equipment [post]
func (h *AdminEquipmentHandler) Create(c echo.Context) error {
	var req equipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.equipment.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/admin/equipment/:id.
//
// @Summary      Update equipment
// @Tags         admin-equipment
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Equipment ID"
// @Param        body  body      equipmentRequest  true  "Equipment details"
// @Success      200   {object}  domain.Equipment
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/equipment/{id} [put]
func (h *AdminEquipmentHandler) Update(c echo.Context) error {
	var req equipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.equipment.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/admin/equipment/:id.
//
// @Summary      Delete equipment
// @Tags         admin-equipment
// @Produce      json
// @Param        id   path      string  true  "Equipment ID"
// @Success      200  {object}  map[string]string
// @Router       /api/admin/equipment/{id} [delete]
func (h *AdminEquipmentHandler) Delete(c echo.Context) error {
	if err := h.equipment.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "equipment deleted"})
}

// Stats handles GET /api/admin/equipment/stats.
//
// @Summary      Equipment overview counters
// @Tags         admin-equipment
// @Produce      json
// @Success      200  {object}  domain.EquipmentStats
// @Router       /api/admin/equipment/stats [get]
func (h *AdminEquipmentHandler) Stats(c echo.Context) error {
	stats, err := h.equipment.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
