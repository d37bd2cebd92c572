package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/inventrack/inventory-service/internal/errors"
	"github.com/inventrack/inventory-service/internal/models"
	service "github.com/inventrack/inventory-service/internal/services"
	"github.com/inventrack/inventory-service/internal/utils"
	"github.com/inventrack/inventory-service/internal/utils/response"

	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())

		if err != nil {
			slog.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)

	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r)

		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, product)

	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		// Decode the request body
		var req models.CreateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.BadRequestError(err.Error()))
			return
		}

		// Presence gate only: empty name/category or absent quantity/price.
		if err := h.validator.Struct(req); err != nil {
			slog.Warn("Product payload missing required fields", slog.String("error", err.Error()))
			response.Error(w, apperrors.ValidationError("Missing required fields"))
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)

		if err != nil {
			slog.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product created", slog.Int64("productId", product.ID))
		response.WriteJson(w, http.StatusOK, models.CreateProductResponse{
			ID:      product.ID,
			Message: "Product created successfully",
		})

	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r)

		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))
			return
		}

		// Decode the request body. No presence validation here: absent
		// fields go to the storage layer as-is.
		var req models.UpdateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.BadRequestError(err.Error()))
			return
		}

		if err := h.productService.UpdateProduct(r.Context(), id, &req); err != nil {
			slog.Error("Error during product update", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product updated", slog.Int64("productId", id))
		response.WriteJson(w, http.StatusOK, models.MessageResponse{Message: "Product updated successfully"})

	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r)

		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			slog.Error("Error during product deletion", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product deleted", slog.Int64("productId", id))
		response.WriteJson(w, http.StatusOK, models.MessageResponse{Message: "Product deleted successfully"})

	}
}
