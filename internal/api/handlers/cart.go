package handlers

import (
	"log/slog"
	"net/http"

	"github.com/croftwave/storefront/internal/api/middleware"
	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	service "github.com/croftwave/storefront/internal/services"
	"github.com/croftwave/storefront/internal/utils"
	"github.com/croftwave/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// Get returns the session's cart, creating an empty one on first access.
func (h *CartHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.PathValue("session_id")
		if sessionID == "" {
			response.Error(w, appErrors.BadRequestError("Session ID is required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID := r.PathValue("session_id")
		if sessionID == "" {
			response.Error(w, appErrors.BadRequestError("Session ID is required"))
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Adding cart item failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item added",
			slog.String("session_id", sessionID),
			slog.Int64("product_id", req.ProductID),
		)
		response.WriteJSON(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID := r.PathValue("session_id")

		itemID, ok := parseID(w, r, "item_id", "Invalid cart item id")
		if !ok {
			return
		}

		var req models.UpdateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateItem(r.Context(), sessionID, itemID, &req)
		if err != nil {
			logger.Warn("Updating cart item failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.PathValue("session_id")

		itemID, ok := parseID(w, r, "item_id", "Invalid cart item id")
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, itemID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.PathValue("session_id")

		cart, err := h.cartService.ClearCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, cart)
	}
}
