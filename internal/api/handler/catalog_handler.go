package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// CatalogHandler serves the buyer-facing marketplace view. Only active
// vendors and approved listings are visible here.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListVendors returns vendors with active membership.
//
// @Summary      Browse vendors
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Vendor
// @Security     BearerAuth
// @Router       /user/vendors [get]
func (h *CatalogHandler) ListVendors(c echo.Context) error {
	vendors, err := h.service.ListVendors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendors)
}

// ListVendorItems returns one vendor's approved listings, optionally
// filtered by the category query parameter.
//
// @Summary      Browse a vendor's items
// @Tags         catalog
// @Produce      json
// @Param        id        path   string  true   "Vendor id"
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}   domain.Item
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/vendors/{id}/items [get]
func (h *CatalogHandler) ListVendorItems(c echo.Context) error {
	items, err := h.service.ListVendorItems(c.Request().Context(), c.Param("id"), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListItems returns approved listings across all active vendors.
//
// @Summary      Browse items
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}  domain.Item
// @Security     BearerAuth
// @Router       /user/items [get]
func (h *CatalogHandler) ListItems(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
