package repository

import (
	"context"
	"database/sql"

	"github.com/croftwave/storefront/internal/models"
	"github.com/croftwave/storefront/internal/utils"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	CountCartReferences(ctx context.Context, id int64) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, description, price, stock)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.Stock).
		Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT id, name, COALESCE(description, ''), price, stock, created_at
		FROM products
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, COALESCE(description, ''), price, stock, created_at
		FROM products
		ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var product models.Product

		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, stock = $4
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(dbCtx, query, product.Name, product.Description, product.Price, product.Stock, product.ID)
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

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
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

// CountCartReferences reports how many cart lines point at the product.
// Used as the delete guard: a referenced product must not disappear from
// under an active cart.
func (r *productRepository) CountCartReferences(ctx context.Context, id int64) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM cart_items WHERE product_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
