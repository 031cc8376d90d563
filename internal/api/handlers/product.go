package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/croftwave/storefront/internal/api/middleware"
	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	service "github.com/croftwave/storefront/internal/services"
	"github.com/croftwave/storefront/internal/utils"
	"github.com/croftwave/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func (h *ProductHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Product creation failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("product_id", product.ID))
		response.WriteJSON(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r, "id", "Invalid product id")
		if !ok {
			return
		}

		product, err := h.productService.GetByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.List(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r, "id", "Invalid product id")
		if !ok {
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.Update(r.Context(), id, &req)
		if err != nil {
			logger.Error("Product update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.Int64("product_id", product.ID))
		response.WriteJSON(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r, "id", "Invalid product id")
		if !ok {
			return
		}

		if err := h.productService.Delete(r.Context(), id); err != nil {
			logger.Error("Product deletion failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.Int64("product_id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
	}
}

// parseID pulls an integer path value and writes a 400 when it is malformed.
func parseID(w http.ResponseWriter, r *http.Request, name, message string) (int64, bool) {

	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		response.Error(w, appErrors.BadRequestError(message))
		return 0, false
	}

	return id, true
}
