package handlers

import (
	"log/slog"
	"net/http"

	"github.com/croftwave/storefront/internal/api/middleware"
	"github.com/croftwave/storefront/internal/metrics"
	"github.com/croftwave/storefront/internal/models"
	service "github.com/croftwave/storefront/internal/services"
	"github.com/croftwave/storefront/internal/utils"
	"github.com/croftwave/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Create places an order from the session's cart.
func (h *OrderHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Warn("Order placement failed",
				slog.String("session_id", req.SessionID),
				slog.String("error", err.Error()),
			)
			response.Error(w, err)
			return
		}

		metrics.OrderPlaced()
		logger.Info("Order placed",
			slog.Int64("order_id", order.ID),
			slog.String("session_id", order.SessionID),
			slog.Float64("total", order.Total),
		)
		response.WriteJSON(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r, "id", "Invalid order id")
		if !ok {
			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, order)
	}
}

// List returns orders newest-first; ?session_id= filters by session.
func (h *OrderHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.URL.Query().Get("session_id")

		orders, err := h.orderService.ListOrders(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r, "id", "Invalid order id")
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Warn("Order status update failed",
				slog.Int64("order_id", id),
				slog.String("error", err.Error()),
			)
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated",
			slog.Int64("order_id", order.ID),
			slog.String("status", string(order.Status)),
		)
		response.WriteJSON(w, http.StatusOK, order)
	}
}
