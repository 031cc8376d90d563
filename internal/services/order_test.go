package service_test

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/models"
	repository "github.com/croftwave/storefront/internal/repositories"
	"github.com/croftwave/storefront/internal/repositories/mocks"
	service "github.com/croftwave/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		want := &models.Order{
			ID:        42,
			SessionID: "s1",
			Status:    models.OrderStatusPending,
			Total:     19.98,
			CreatedAt: time.Now(),
			Items: []models.OrderItem{
				{ID: 1, ProductID: 7, ProductName: "Widget", Price: 9.99, Quantity: 2, Subtotal: 19.98},
			},
		}
		repo.On("PlaceOrder", mock.Anything, "s1").Return(want, nil).Once()

		// Act
		order, err := svc.CreateOrder(t.Context(), &models.CreateOrderRequest{SessionID: "s1"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.InDelta(t, 19.98, order.Total, 0.001)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		repo.On("PlaceOrder", mock.Anything, "s1").Return(nil, repository.ErrCartEmpty).Once()

		// Act
		order, err := svc.CreateOrder(t.Context(), &models.CreateOrderRequest{SessionID: "s1"})

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "cart is empty", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		stockErr := &repository.StockError{ProductID: 7, ProductName: "Widget", Available: 1, Requested: 2}
		repo.On("PlaceOrder", mock.Anything, "s1").Return(nil, stockErr).Once()

		// Act
		order, err := svc.CreateOrder(t.Context(), &models.CreateOrderRequest{SessionID: "s1"})

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Equal(t, "insufficient stock for product 'Widget'", appErr.Message)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		want := &models.Order{ID: 42, SessionID: "s1", Status: models.OrderStatusPending}
		repo.On("GetByID", mock.Anything, int64(42)).Return(want, nil).Once()

		// Act
		order, err := svc.GetOrderByID(t.Context(), 42)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, want, order)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		repo.On("GetByID", mock.Anything, int64(404)).Return(nil, sql.ErrNoRows).Once()

		// Act
		order, err := svc.GetOrderByID(t.Context(), 404)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	// Arrange
	repo := new(mocks.OrderRepository)
	svc := service.NewOrderService(repo)

	want := []models.Order{{ID: 43}, {ID: 42}}
	repo.On("List", mock.Anything, "s1").Return(want, nil).Once()

	// Act
	orders, err := svc.ListOrders(t.Context(), "s1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, orders)
	repo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		want := &models.Order{ID: 42, SessionID: "s1", Status: models.OrderStatusShipped}
		repo.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusShipped).Return(nil).Once()
		repo.On("GetByID", mock.Anything, int64(42)).Return(want, nil).Once()

		// Act
		order, err := svc.UpdateStatus(t.Context(), 42, "shipped")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		// Act
		order, err := svc.UpdateStatus(t.Context(), 42, "flying")

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "invalid status, must be one of: cancelled, delivered, pending, processing, shipped", appErr.Message)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		svc := service.NewOrderService(repo)

		repo.On("UpdateStatus", mock.Anything, int64(404), models.OrderStatusCancelled).Return(sql.ErrNoRows).Once()

		// Act
		order, err := svc.UpdateStatus(t.Context(), 404, "cancelled")

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})
}
