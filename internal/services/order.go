package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	repository "github.com/croftwave/storefront/internal/repositories"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, sessionID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	order, err := s.orderRepo.PlaceOrder(ctx, req.SessionID)
	if err != nil {

		if errors.Is(err, repository.ErrCartEmpty) {
			return nil, appErrors.ValidationError("cart is empty").WithError(err)
		}

		var stockErr *repository.StockError
		if errors.As(err, &stockErr) {
			return nil, appErrors.InsufficientStockError(stockErr.ProductName).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to place order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, sessionID string) ([]models.Order, error) {

	orders, err := s.orderRepo.List(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// UpdateStatus accepts any of the five defined states; there is no
// transition graph, any state may follow any other.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {

	newStatus := models.OrderStatus(status)
	if !newStatus.Valid() {
		return nil, appErrors.ValidationError(
			fmt.Sprintf("invalid status, must be one of: %s", models.ValidOrderStatusList()))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}
