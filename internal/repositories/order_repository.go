package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/croftwave/storefront/internal/models"
	"github.com/croftwave/storefront/internal/utils"
)

// ErrCartEmpty is returned by PlaceOrder when the session has no cart or the
// cart holds no lines.
var ErrCartEmpty = errors.New("cart is empty")

// StockError reports the first cart line whose quantity exceeds the current
// stock of its product. PlaceOrder aborts the whole transaction on it.
type StockError struct {
	ProductID   int64
	ProductName string
	Available   int
	Requested   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product '%s'", e.ProductName)
}

type OrderRepository interface {
	PlaceOrder(ctx context.Context, sessionID string) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, sessionID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// PlaceOrder converts the session's cart into an order as one transaction:
// lock the involved product rows, re-check stock against current values,
// snapshot name/price into order items, decrement stock and clear the cart.
// Any failure rolls the whole thing back; no partial apply is ever visible.
func (r *orderRepository) PlaceOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	var cartID int64

	err = tx.QueryRowContext(dbCtx, `SELECT id FROM carts WHERE session_id = $1`, sessionID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartEmpty
		}

		return nil, err
	}

	// Locking the product rows serializes concurrent placements against the
	// same products; a loser re-reads the decremented stock and fails the
	// check below instead of oversubscribing inventory.
	linesQuery := `
		SELECT ci.id, ci.product_id, p.name, p.price, p.stock, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.product_id
		FOR UPDATE OF p
	`

	rows, err := tx.QueryContext(dbCtx, linesQuery, cartID)
	if err != nil {
		return nil, err
	}

	type orderLine struct {
		productID   int64
		productName string
		price       float64
		stock       int
		quantity    int
	}

	var lines []orderLine

	for rows.Next() {
		var line orderLine
		var lineID int64

		if err := rows.Scan(&lineID, &line.productID, &line.productName, &line.price, &line.stock, &line.quantity); err != nil {
			rows.Close()
			return nil, err
		}

		lines = append(lines, line)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var total float64

	for _, line := range lines {
		if line.stock < line.quantity {
			return nil, &StockError{
				ProductID:   line.productID,
				ProductName: line.productName,
				Available:   line.stock,
				Requested:   line.quantity,
			}
		}

		total += line.price * float64(line.quantity)
	}

	order := &models.Order{
		SessionID: sessionID,
		Status:    models.OrderStatusPending,
		Total:     total,
	}

	err = tx.QueryRowContext(dbCtx,
		`INSERT INTO orders (session_id, status, total) VALUES ($1, $2, $3) RETURNING id, created_at`,
		order.SessionID, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.Items = make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {

		item := models.OrderItem{
			ProductID:   line.productID,
			ProductName: line.productName,
			Price:       line.price,
			Quantity:    line.quantity,
			Subtotal:    line.price * float64(line.quantity),
		}

		err = tx.QueryRowContext(dbCtx,
			`INSERT INTO order_items (order_id, product_id, product_name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			order.ID, item.ProductID, item.ProductName, item.Price, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(dbCtx,
			`UPDATE products SET stock = stock - $1 WHERE id = $2`,
			line.quantity, line.productID,
		)
		if err != nil {
			return nil, err
		}

		order.Items = append(order.Items, item)
	}

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, session_id, status, total, created_at
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&order.ID, &order.SessionID, &order.Status, &order.Total, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// List returns orders newest-first, optionally filtered by session.
func (r *orderRepository) List(ctx context.Context, sessionID string) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, session_id, status, total, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	args := []any{}

	if sessionID != "" {
		query = `
		SELECT id, session_id, status, total, created_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
		args = append(args, sessionID)
	}

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		var order models.Order

		err := rows.Scan(&order.ID, &order.SessionID, &order.Status, &order.Total, &order.CreatedAt)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, err
		}

		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {

	query := `
		SELECT id, product_id, product_name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.Price, &item.Quantity)
		if err != nil {
			return nil, err
		}

		item.Subtotal = item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
