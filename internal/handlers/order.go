package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Joaobosco1993/sales-api/internal/logging"
	"github.com/Joaobosco1993/sales-api/internal/mykafka"
	"github.com/Joaobosco1993/sales-api/internal/order"
)

type OrderHandler struct {
	Svc       *order.Service
	Producer  *mykafka.Producer
	JWTSecret []byte
}

type orderLineRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type placeOrderRequest struct {
	Items []orderLineRequest `json:"items"`
}

func (h *OrderHandler) publish(c echo.Context, userID uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(userID), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func orderHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	lines := make([]order.Line, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, order.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, err := h.Svc.PlaceOrder(ctx, userID, lines)
	if err != nil {
		he := orderHTTPError(err)
		l.Warn("place_order_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, userID, map[string]any{
		"type":    "order_created",
		"userID":  userID,
		"orderID": o.ID,
		"total":   o.Total,
	})

	l.Info("place_order_success", "orderID", o.ID, "total", o.Total)
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return orderHTTPError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := h.Svc.GetOrder(c.Request().Context(), userID, uint(id))
	if err != nil {
		return orderHTTPError(err)
	}

	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteOrder(c.Request().Context(), userID, uint(id)); err != nil {
		return orderHTTPError(err)
	}

	h.publish(c, userID, map[string]any{
		"type":    "order_deleted",
		"userID":  userID,
		"orderID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
