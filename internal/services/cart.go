package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	repository "github.com/croftwave/storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	UpdateItem(ctx context.Context, sessionID string, itemID int64, req *models.UpdateItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, itemID int64) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (*models.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart lazily creates the cart on first access for a session.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return s.loadView(ctx, cart)
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	line, err := s.cartRepo.GetLineByProduct(ctx, cart.ID, product.ID)

	switch {
	case err == nil:
		// Same product again: merge into the existing line, the combined
		// quantity still has to fit the current stock.
		if product.Stock < line.Quantity+req.Quantity {
			return nil, appErrors.InsufficientStockError(product.Name)
		}

		if err := s.cartRepo.UpdateLineQuantity(ctx, line.ID, line.Quantity+req.Quantity); err != nil {
			return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
		}

	case errors.Is(err, sql.ErrNoRows):
		if product.Stock < req.Quantity {
			return nil, appErrors.InsufficientStockError(product.Name)
		}

		if err := s.cartRepo.InsertLine(ctx, cart.ID, product.ID, req.Quantity); err != nil {
			return nil, appErrors.DatabaseError("Failed to add cart item").WithError(err)
		}

	default:
		return nil, appErrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	return s.loadView(ctx, cart)
}

func (s *cartService) UpdateItem(ctx context.Context, sessionID string, itemID int64, req *models.UpdateItemRequest) (*models.Cart, error) {

	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	line, err := s.cartRepo.GetLine(ctx, cart.ID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	quantity := *req.Quantity

	if quantity <= 0 {
		if err := s.cartRepo.DeleteLine(ctx, cart.ID, line.ID); err != nil {
			return nil, appErrors.DatabaseError("Failed to remove cart item").WithError(err)
		}

		return s.loadView(ctx, cart)
	}

	product, err := s.productRepo.GetByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.Stock < quantity {
		return nil, appErrors.InsufficientStockError(product.Name)
	}

	if err := s.cartRepo.UpdateLineQuantity(ctx, line.ID, quantity); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return s.loadView(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, itemID int64) (*models.Cart, error) {

	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if err := s.cartRepo.DeleteLine(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return s.loadView(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, err := s.cartRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if err := s.cartRepo.ClearLines(ctx, cart.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return s.loadView(ctx, cart)
}

// loadView fills the cart with its joined line items and the total computed
// from live product prices.
func (s *cartService) loadView(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	cart.Items = items
	cart.Total = 0

	for _, item := range items {
		cart.Total += item.Subtotal
	}

	return cart, nil
}
