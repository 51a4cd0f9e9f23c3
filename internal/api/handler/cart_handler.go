package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/middleware"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// CartHandler manages the caller's shopping cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func toCartLineResponse(line ports.CartLine) cartLineResponse {
	return cartLineResponse{
		ID:       line.ID,
		ItemID:   line.ItemID,
		Quantity: line.Quantity,
		Item:     line.Item,
	}
}

// Get returns the caller's cart joined with current listing data.
//
// @Summary      View cart
// @Tags         cart
// @Produce      json
// @Success      200  {array}  cartLineResponse
// @Security     BearerAuth
// @Router       /user/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	lines, err := h.service.Get(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	out := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, toCartLineResponse(line))
	}
	return c.JSON(http.StatusOK, out)
}

// Add puts an item into the cart, merging quantities when the item is
// already present.
//
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Item and quantity"
// @Success      201   {object}  cartLineResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	line, err := h.service.Add(c.Request().Context(), principal.ID, req.ItemID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCartLineResponse(*line))
}

// Remove deletes a single cart entry.
//
// @Summary      Remove from cart
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "Cart entry id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), principal.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// Clear empties the caller's cart.
//
// @Summary      Clear cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  statusResponse
// @Security     BearerAuth
// @Router       /user/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), principal.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "cleared"})
}
