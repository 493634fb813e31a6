package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
	"github.com/hafaksurgicals/portal/internal/quote"
)

// CatalogHandler serves the public product catalog: listing, detail,
// featured picks, categories, search and quote links. No authentication.
type CatalogHandler struct {
	equipment ports.EquipmentAPI
	quotes    *quote.Builder
}

func NewCatalogHandler(equipment ports.EquipmentAPI, quotes *quote.Builder) *CatalogHandler {
	return &CatalogHandler{equipment: equipment, quotes: quotes}
}

// List handles GET /api/products.
//
// @Summary      List public products
// @Tags         catalog
// @Produce      json
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Param        search    query     string  false  "Free-text search"
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  equipmentListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	opts := ports.PublicListOptions{
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	page, err := h.equipment.ListPublic(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, equipmentListResponse{Data: page.Items, Pagination: page.Pagination})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get one public product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Equipment
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	item, err := h.equipment.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Featured handles GET /api/products/featured.
//
// @Summary      Featured products
// @Tags         catalog
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of items"
// @Success      200    {array}   domain.Equipment
// @Router       /api/products/featured [get]
func (h *CatalogHandler) Featured(c echo.Context) error {
	items, err := h.equipment.Featured(c.Request().Context(), intQuery(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Categories handles GET /api/products/categories.
//
// @Summary      Public category list
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/products/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	cats, err := h.equipment.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// Search handles GET /api/products/search.
//
// @Summary      Search public products
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   domain.Equipment
// @Router       /api/products/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "q is required"})
	}
	items, err := h.equipment.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// QuoteLink handles GET /api/products/:id/quote-link. The link opens a
// pre-filled WhatsApp chat requesting a quote for the product.
//
// @Summary      WhatsApp quote link for a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  quoteLinkResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id}/quote-link [get]
func (h *CatalogHandler) QuoteLink(c echo.Context) error {
	item, err := h.equipment.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quoteLinkResponse{URL: h.quotes.Link(*item)})
}

// intQuery parses an optional positive integer query parameter; absent or
// malformed values collapse to zero, which downstream treats as "omitted".
func intQuery(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
