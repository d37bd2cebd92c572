package repository

import (
	"context"
	"database/sql"

	"github.com/inventrack/inventory-service/internal/models"
	"github.com/inventrack/inventory-service/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.Stats, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, category, quantity, price, description, created_at, updated_at
		FROM products
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var product models.Product

		err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Quantity, &product.Price, &product.Description, &product.CreatedAt, &product.UpdatedAt)
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

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT id, name, category, quantity, price, description, created_at, updated_at
		FROM products
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.Category, &product.Quantity, &product.Price, &product.Description, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, category, quantity, price, description)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Category, product.Quantity, product.Price, product.Description).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// UpdateProduct overwrites all five columns from the request as given. Nil
// pointers become NULL parameters, so an absent required field surfaces as a
// constraint violation from the database rather than a validation error here.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, category = $2, quantity = $3, price = $4, description = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	var updatedAt sql.NullTime

	return r.DB.QueryRowContext(dbCtx, query, req.Name, req.Category, req.Quantity, req.Price, req.Description, id).Scan(&updatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM products WHERE id = $1 RETURNING id`

	var deletedID int64

	return r.DB.QueryRowContext(dbCtx, query, id).Scan(&deletedID)
}

// Stats computes the dashboard aggregates in a single pass. Sums over an
// empty table are coalesced to zero so the JSON shape stays stable.
func (r *productRepository) Stats(ctx context.Context) (*models.Stats, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stats := &models.Stats{}

	query := `
		SELECT
			COUNT(*) AS total_products,
			COALESCE(SUM(quantity), 0) AS total_items,
			COUNT(DISTINCT category) AS categories,
			COALESCE(SUM(quantity * price), 0) AS total_value
		FROM products`

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&stats.TotalProducts, &stats.TotalItems, &stats.Categories, &stats.TotalValue)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
