package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/middleware"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// GuestHandler manages the caller's event guest list.
type GuestHandler struct {
	service ports.GuestService
}

func NewGuestHandler(service ports.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

// List returns the caller's guest list.
//
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Success      200  {array}  domain.Guest
// @Security     BearerAuth
// @Router       /user/guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	guests, err := h.service.List(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guests)
}

// Add puts a guest on the list. RSVP status defaults to Pending.
//
// @Summary      Add guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        body  body      addGuestRequest  true  "Guest details"
// @Success      201   {object}  domain.Guest
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/guests [post]
func (h *GuestHandler) Add(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req addGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest, err := h.service.Add(c.Request().Context(), principal.ID, ports.AddGuestInput{
		GuestName:  req.GuestName,
		Email:      req.Email,
		RSVPStatus: domain.RSVPStatus(req.RSVPStatus),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, guest)
}

// Update partially updates a guest entry. A null email leaves the field
// unchanged; an empty string clears it.
//
// @Summary      Update guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Guest id"
// @Param        body  body      updateGuestRequest  true  "Fields to change"
// @Success      200   {object}  domain.Guest
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/guests/{id} [put]
func (h *GuestHandler) Update(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req updateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest, err := h.service.Update(c.Request().Context(), principal.ID, c.Param("id"), ports.UpdateGuestInput{
		GuestName:  req.GuestName,
		Email:      req.Email,
		RSVPStatus: domain.RSVPStatus(req.RSVPStatus),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Remove deletes a guest entry.
//
// @Summary      Remove guest
// @Tags         guests
// @Produce      json
// @Param        id  path  string  true  "Guest id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/guests/{id} [delete]
func (h *GuestHandler) Remove(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), principal.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}
