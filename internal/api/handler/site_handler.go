package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/domain"
)

// SiteHandler serves the static marketing content: company profile and office
// contact details, both sourced from configuration.
type SiteHandler struct {
	company domain.CompanyInfo
	office  domain.OfficeInfo
}

func NewSiteHandler(company domain.CompanyInfo, office domain.OfficeInfo) *SiteHandler {
	return &SiteHandler{company: company, office: office}
}

// Company handles GET /api/site/company.
//
// @Summary      Company profile
// @Tags         site
// @Produce      json
// @Success      200  {object}  domain.CompanyInfo
// @Router       /api/site/company [get]
func (h *SiteHandler) Company(c echo.Context) error {
	return c.JSON(http.StatusOK, h.company)
}

// Office handles GET /api/site/office.
//
// @Summary      Office contact details
// @Tags         site
// @Produce      json
// @Success      200  {object}  domain.OfficeInfo
// @Router       /api/site/office [get]
func (h *SiteHandler) Office(c echo.Context) error {
	return c.JSON(http.StatusOK, h.office)
}
