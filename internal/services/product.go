package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	repository "github.com/croftwave/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo      repository.ProductRepository
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *productService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return nil, appErrors.ValidationError("name must not be empty")
	}

	product := &models.Product{
		Name:        name,
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       *req.Price,
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(s.sanitizer.Sanitize(*req.Name))
		if name == "" {
			return nil, appErrors.ValidationError("name must not be empty")
		}

		product.Name = name
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

// Delete refuses to remove a product that live carts still reference; order
// items are snapshots and keep no such dependency.
func (s *productService) Delete(ctx context.Context, id int64) error {

	refs, err := s.repo.CountCartReferences(ctx, id)
	if err != nil {
		return appErrors.DatabaseError("Failed to check cart references").WithError(err)
	}

	if refs > 0 {
		return appErrors.ConflictError("product is referenced by active carts")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	return nil
}
