package repository

import (
	"context"
	"database/sql"

	"github.com/croftwave/storefront/internal/models"
	"github.com/croftwave/storefront/internal/utils"
)

// CartLine is the stored form of a cart item: just the product reference and
// quantity. The client-facing view (models.CartItem) is assembled by joining
// the live product row.
type CartLine struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
}

type CartRepository interface {
	GetOrCreate(ctx context.Context, sessionID string) (*models.Cart, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Cart, error)
	ListItems(ctx context.Context, cartID int64) ([]models.CartItem, error)
	GetLine(ctx context.Context, cartID, lineID int64) (*CartLine, error)
	GetLineByProduct(ctx context.Context, cartID, productID int64) (*CartLine, error)
	InsertLine(ctx context.Context, cartID, productID int64, quantity int) error
	UpdateLineQuantity(ctx context.Context, lineID int64, quantity int) error
	DeleteLine(ctx context.Context, cartID, lineID int64) error
	ClearLines(ctx context.Context, cartID int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// GetOrCreate is idempotent. The insert races with concurrent calls for the
// same never-seen session; ON CONFLICT DO NOTHING plus the unique constraint
// on session_id guarantees a single cart, and the follow-up select returns
// whichever row won.
func (r *cartRepository) GetOrCreate(ctx context.Context, sessionID string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	insert := `
		INSERT INTO carts (session_id)
		VALUES ($1)
		ON CONFLICT (session_id) DO NOTHING
	`

	if _, err := r.DB.ExecContext(dbCtx, insert, sessionID); err != nil {
		return nil, err
	}

	return r.getBySessionID(dbCtx, sessionID)
}

func (r *cartRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.getBySessionID(dbCtx, sessionID)
}

func (r *cartRepository) getBySessionID(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart := &models.Cart{}

	query := `
		SELECT id, session_id, created_at
		FROM carts
		WHERE session_id = $1
	`

	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(&cart.ID, &cart.SessionID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}

	return cart, nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID int64) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem

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

func (r *cartRepository) GetLine(ctx context.Context, cartID, lineID int64) (*CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items
		WHERE id = $1 AND cart_id = $2
	`

	line := &CartLine{}

	err := r.DB.QueryRowContext(dbCtx, query, lineID, cartID).
		Scan(&line.ID, &line.CartID, &line.ProductID, &line.Quantity)
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (r *cartRepository) GetLineByProduct(ctx context.Context, cartID, productID int64) (*CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`

	line := &CartLine{}

	err := r.DB.QueryRowContext(dbCtx, query, cartID, productID).
		Scan(&line.ID, &line.CartID, &line.ProductID, &line.Quantity)
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (r *cartRepository) InsertLine(ctx context.Context, cartID, productID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
	`

	_, err := r.DB.ExecContext(dbCtx, query, cartID, productID, quantity)

	return err
}

func (r *cartRepository) UpdateLineQuantity(ctx context.Context, lineID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, lineID)
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

func (r *cartRepository) DeleteLine(ctx context.Context, cartID, lineID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, lineID, cartID)
	if err != nil {
		return err
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ClearLines is idempotent: clearing an already empty cart is not an error.
func (r *cartRepository) ClearLines(ctx context.Context, cartID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)

	return err
}
