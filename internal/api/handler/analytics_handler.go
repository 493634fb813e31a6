package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/service"
)

// AnalyticsHandler serves the aggregated admin dashboard.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Dashboard handles GET /api/admin/analytics.
//
// @Summary      Catalog dashboard counters
// @Tags         admin-analytics
// @Produce      json
// @Success      200  {object}  service.Dashboard
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/analytics [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	dash, err := h.analytics.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}
