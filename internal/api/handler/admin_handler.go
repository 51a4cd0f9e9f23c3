package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// AdminHandler exposes the moderation surface: user CRUD, vendor
// membership, and listing approval.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers returns every account in the system.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser creates an account with any role, including admin.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser partially updates an account. Empty fields are left unchanged.
//
// @Summary      Update user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account. Deletion takes effect on the next request
// carrying the deleted account's token.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// ListVendors returns all vendor profiles regardless of membership status.
//
// @Summary      List vendors
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Vendor
// @Security     BearerAuth
// @Router       /admin/vendors [get]
func (h *AdminHandler) ListVendors(c echo.Context) error {
	vendors, err := h.service.ListVendors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendors)
}

// UpdateVendor partially updates a vendor profile.
//
// @Summary      Update vendor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Vendor id"
// @Param        body  body      updateVendorRequest  true  "Fields to change"
// @Success      200   {object}  domain.Vendor
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/vendors/{id} [put]
func (h *AdminHandler) UpdateVendor(c echo.Context) error {
	var req updateVendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vendor, err := h.service.UpdateVendor(c.Request().Context(), c.Param("id"), ports.UpdateVendorInput{
		CompanyName:      req.CompanyName,
		Category:         req.Category,
		MembershipStatus: domain.MembershipStatus(req.MembershipStatus),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// UpdateMembership sets the vendor's membership status. Moving a vendor out
// of active immediately hides its listings from the public catalog.
//
// @Summary      Update vendor membership
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Vendor id"
// @Param        body  body      membershipRequest  true  "New membership status"
// @Success      200   {object}  domain.Vendor
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/vendors/{id}/membership [put]
func (h *AdminHandler) UpdateMembership(c echo.Context) error {
	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vendor, err := h.service.UpdateMembership(c.Request().Context(), c.Param("id"), domain.MembershipStatus(req.MembershipStatus))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// ListItems returns every listing in every status, for moderation.
//
// @Summary      List all items
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Item
// @Security     BearerAuth
// @Router       /admin/items [get]
func (h *AdminHandler) ListItems(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ApproveItem marks a pending listing as approved, publishing it.
//
// @Summary      Approve item
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/items/{id}/approve [put]
func (h *AdminHandler) ApproveItem(c echo.Context) error {
	item, err := h.service.ApproveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// RejectItem marks a listing as rejected, removing it from the catalog.
//
// @Summary      Reject item
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/items/{id}/reject [put]
func (h *AdminHandler) RejectItem(c echo.Context) error {
	item, err := h.service.RejectItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem removes a listing outright.
//
// @Summary      Delete item
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/items/{id} [delete]
func (h *AdminHandler) DeleteItem(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}
