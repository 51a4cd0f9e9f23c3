package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/middleware"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// VendorHandler exposes the seller dashboard: profile, own listings, and
// incoming order requests. Every route is scoped to the calling vendor.
type VendorHandler struct {
	service ports.VendorService
}

func NewVendorHandler(service ports.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// Profile returns the caller's vendor profile, creating one on first use.
//
// @Summary      Vendor profile
// @Tags         vendor
// @Produce      json
// @Success      200  {object}  vendorProfileResponse
// @Security     BearerAuth
// @Router       /vendor/profile [get]
func (h *VendorHandler) Profile(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vendorProfileResponse{
		ID:               profile.Vendor.ID,
		CompanyName:      profile.Vendor.CompanyName,
		Category:         profile.Vendor.Category,
		MembershipStatus: string(profile.Vendor.MembershipStatus),
		Name:             profile.UserName,
		Email:            profile.UserEmail,
	})
}

// ListItems returns all of the caller's listings in every status.
//
// @Summary      List own items
// @Tags         vendor
// @Produce      json
// @Success      200  {array}  domain.Item
// @Security     BearerAuth
// @Router       /vendor/items [get]
func (h *VendorHandler) ListItems(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListItems(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateItem adds a new listing. It enters the catalog pending approval.
//
// @Summary      Create item
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "New listing"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /vendor/items [post]
func (h *VendorHandler) CreateItem(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), principal, ports.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem partially updates one of the caller's listings. Items owned by
// other vendors are reported as not found.
//
// @Summary      Update item
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.Item
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /vendor/items/{id} [put]
func (h *VendorHandler) UpdateItem(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateItem(c.Request().Context(), principal, c.Param("id"), ports.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      domain.ItemStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem removes one of the caller's listings.
//
// @Summary      Delete item
// @Tags         vendor
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /vendor/items/{id} [delete]
func (h *VendorHandler) DeleteItem(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// ListRequests returns orders placed against the caller's listings.
//
// @Summary      List order requests
// @Tags         vendor
// @Produce      json
// @Success      200  {array}  domain.Order
// @Security     BearerAuth
// @Router       /vendor/requests [get]
func (h *VendorHandler) ListRequests(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListRequests(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateRequestStatus moves one of the caller's incoming orders to a new
// status.
//
// @Summary      Update order request status
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Order id"
// @Param        body  body      requestStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /vendor/requests/{id}/status [put]
func (h *VendorHandler) UpdateRequestStatus(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req requestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateRequestStatus(c.Request().Context(), principal, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
