package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/croftwave/storefront/internal/models"
	repository "github.com/croftwave/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_PlaceOrder(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := t.Context()

	cartLookupSQL := regexp.QuoteMeta(`SELECT id FROM carts WHERE session_id = $1`)
	linesSQL := regexp.QuoteMeta(`FOR UPDATE OF p`)
	insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders (session_id, status, total)`)
	insertItemSQL := regexp.QuoteMeta(`INSERT INTO order_items (order_id, product_id, product_name, price, quantity)`)
	decrementSQL := regexp.QuoteMeta(`UPDATE products SET stock = stock - $1 WHERE id = $2`)
	clearCartSQL := regexp.QuoteMeta(`DELETE FROM cart_items WHERE cart_id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(cartLookupSQL).WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectQuery(linesSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "quantity"}).
				AddRow(int64(10), int64(7), "Widget", 9.99, 10, 2).
				AddRow(int64(11), int64(8), "Gadget", 19.99, 5, 1))
		mock.ExpectQuery(insertOrderSQL).WithArgs("s1", "pending", 39.97).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
		mock.ExpectQuery(insertItemSQL).WithArgs(int64(42), int64(7), "Widget", 9.99, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(decrementSQL).WithArgs(2, int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertItemSQL).WithArgs(int64(42), int64(8), "Gadget", 19.99, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectExec(decrementSQL).WithArgs(1, int64(8)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(clearCartSQL).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		// Act
		order, err := repo.PlaceOrder(ctx, "s1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.InDelta(t, 39.97, order.Total, 0.001)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "Widget", order.Items[0].ProductName)
		assert.InDelta(t, 19.98, order.Items[0].Subtotal, 0.001)
		assert.Equal(t, "Gadget", order.Items[1].ProductName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoCartForSession", func(t *testing.T) {
		// Arrange
		mock.ExpectBegin()
		mock.ExpectQuery(cartLookupSQL).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		// Act
		order, err := repo.PlaceOrder(ctx, "ghost")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrCartEmpty)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyCart", func(t *testing.T) {
		// Arrange
		mock.ExpectBegin()
		mock.ExpectQuery(cartLookupSQL).WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectQuery(linesSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "quantity"}))
		mock.ExpectRollback()

		// Act
		order, err := repo.PlaceOrder(ctx, "s1")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrCartEmpty)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		// Arrange: stock shrank to 1 since the item was added.
		mock.ExpectBegin()
		mock.ExpectQuery(cartLookupSQL).WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectQuery(linesSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "quantity"}).
				AddRow(int64(10), int64(7), "Widget", 9.99, 1, 2))
		mock.ExpectRollback()

		// Act
		order, err := repo.PlaceOrder(ctx, "s1")

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		var stockErr *repository.StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, int64(7), stockErr.ProductID)
		assert.Equal(t, "Widget", stockErr.ProductName)
		assert.Equal(t, 1, stockErr.Available)
		assert.Equal(t, 2, stockErr.Requested)
		assert.Equal(t, "insufficient stock for product 'Widget'", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFailureRollsBack", func(t *testing.T) {
		// Arrange
		dbError := errors.New("unique violation")

		mock.ExpectBegin()
		mock.ExpectQuery(cartLookupSQL).WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectQuery(linesSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "quantity"}).
				AddRow(int64(10), int64(7), "Widget", 9.99, 10, 2))
		mock.ExpectQuery(insertOrderSQL).WithArgs("s1", "pending", 19.98).WillReturnError(dbError)
		mock.ExpectRollback()

		// Act
		order, err := repo.PlaceOrder(ctx, "s1")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbError)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_Reads(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := t.Context()

	orderSelectSQL := regexp.QuoteMeta(`SELECT id, session_id, status, total, created_at`)
	itemsSQL := regexp.QuoteMeta(`WHERE order_id = $1`)

	t.Run("GetByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()

			mock.ExpectQuery(orderSelectSQL).WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "status", "total", "created_at"}).
					AddRow(int64(42), "s1", "pending", 19.98, now))
			mock.ExpectQuery(itemsSQL).WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "price", "quantity"}).
					AddRow(int64(1), int64(7), "Widget", 9.99, 2))

			// Act
			order, err := repo.GetByID(ctx, 42)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "s1", order.SessionID)
			assert.Equal(t, models.OrderStatusPending, order.Status)
			require.Len(t, order.Items, 1)
			assert.InDelta(t, 19.98, order.Items[0].Subtotal, 0.001, "item subtotal is recomputed from the snapshot")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(orderSelectSQL).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

			// Act
			order, err := repo.GetByID(ctx, 404)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, order)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Run("AllSessions", func(t *testing.T) {
			// Arrange
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "status", "total", "created_at"}).
					AddRow(int64(43), "s2", "shipped", 5.00, now).
					AddRow(int64(42), "s1", "pending", 19.98, now.Add(-time.Hour)))
			mock.ExpectQuery(itemsSQL).WithArgs(int64(43)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "price", "quantity"}))
			mock.ExpectQuery(itemsSQL).WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "price", "quantity"}).
					AddRow(int64(1), int64(7), "Widget", 9.99, 2))

			// Act
			orders, err := repo.List(ctx, "")

			// Assert
			require.NoError(t, err)
			require.Len(t, orders, 2)
			assert.Equal(t, int64(43), orders[0].ID, "newest order comes first")
			assert.Len(t, orders[1].Items, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("FilteredBySession", func(t *testing.T) {
			// Arrange
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`WHERE session_id = $1`)).
				WithArgs("s1").
				WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "status", "total", "created_at"}).
					AddRow(int64(42), "s1", "pending", 19.98, now))
			mock.ExpectQuery(itemsSQL).WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "price", "quantity"}))

			// Act
			orders, err := repo.List(ctx, "s1")

			// Assert
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, "s1", orders[0].SessionID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Empty", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "status", "total", "created_at"}))

			// Act
			orders, err := repo.List(ctx, "")

			// Assert
			require.NoError(t, err)
			assert.Empty(t, orders)
			assert.NotNil(t, orders)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		updateSQL := regexp.QuoteMeta(`UPDATE orders SET status = $1 WHERE id = $2`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(updateSQL).WithArgs("shipped", int64(42)).WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateStatus(ctx, 42, models.OrderStatusShipped)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(updateSQL).WithArgs("cancelled", int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateStatus(ctx, 404, models.OrderStatusCancelled)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
