package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/metrics"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api/middleware"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
)

// OrderHandler manages the caller's orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns the caller's orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  domain.Order
// @Security     BearerAuth
// @Router       /user/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create places an order against one vendor. The total is computed from
// current listing prices, never taken from the client. Resubmitting with
// the same Idempotency-Key header returns the original order.
//
// @Summary      Place order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string              false  "Replay protection key"
// @Param        body             body    createOrderRequest  true   "Order lines"
// @Success      201  {object}  domain.Order
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, ports.OrderLineInput{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	order, err := h.service.Create(c.Request().Context(), principal.ID, ports.CreateOrderInput{
		VendorID:       req.VendorID,
		Lines:          lines,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderValue.Observe(order.TotalAmount)
	return c.JSON(http.StatusCreated, order)
}

// Cancel cancels one of the caller's orders while it is still pending.
//
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/orders/{id}/cancel [put]
func (h *OrderHandler) Cancel(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	order, err := h.service.Cancel(c.Request().Context(), principal.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Pay marks one of the caller's orders as paid.
//
// @Summary      Pay order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /user/orders/{id}/pay [put]
func (h *OrderHandler) Pay(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	order, err := h.service.Pay(c.Request().Context(), principal.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
