package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/inventrack/inventory-service/internal/models"
	repository "github.com/inventrack/inventory-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func float64Ptr(f float64) *float64 { return &f }

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	productCols := []string{"id", "name", "category", "quantity", "price", "description", "created_at", "updated_at"}

	t.Run("ListProducts", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, category, quantity, price, description, created_at, updated_at FROM products ORDER BY created_at DESC`)

		t.Run("Success_DescendingOrder", func(t *testing.T) {
			// Arrange
			now := time.Now()

			rows := sqlmock.NewRows(productCols).
				AddRow(int64(2), "Newer", "Electronics", int64(3), 5.0, nil, now, now).
				AddRow(int64(1), "Older", "Food", int64(7), 2.5, "snack", now.Add(-time.Hour), now.Add(-time.Hour))

			mock.ExpectQuery(expectedSQL).WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err, "ListProducts should not return an error on success")
			require.Len(t, products, 2)
			assert.Equal(t, "Newer", products[0].Name, "Most recently created product should come first")
			assert.Equal(t, "Older", products[1].Name)
			assert.Nil(t, products[0].Description, "NULL description should scan to nil")
			require.NotNil(t, products[1].Description)
			assert.Equal(t, "snack", *products[1].Description)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_Empty", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WillReturnRows(sqlmock.NewRows(productCols))

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err, "ListProducts should not return an error when no rows exist")
			assert.NotNil(t, products, "An empty table should yield an empty slice, not nil")
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err, "ListProducts should return an error on query failure")
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("RowsError", func(t *testing.T) {
			// Arrange
			rowsError := errors.New("rows iteration error")
			rows := sqlmock.NewRows(productCols).
				AddRow(int64(1), "Prod", "Cat", int64(1), 1.0, nil, time.Now(), time.Now()).
				CloseError(rowsError)
			mock.ExpectQuery(expectedSQL).WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err, "ListProducts should surface rows.Err()")
			assert.ErrorIs(t, err, rowsError)
			assert.Nil(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, category, quantity, price, description, created_at, updated_at FROM products WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			expectedProduct := &models.Product{
				ID:          42,
				Name:        "Office Chair",
				Category:    "Furniture",
				Quantity:    8,
				Price:       199.99,
				Description: stringPtr("Comfortable office chair"),
				CreatedAt:   now.Add(-time.Hour),
				UpdatedAt:   now,
			}

			rows := sqlmock.NewRows(productCols).AddRow(
				expectedProduct.ID, expectedProduct.Name, expectedProduct.Category, expectedProduct.Quantity,
				expectedProduct.Price, *expectedProduct.Description, expectedProduct.CreatedAt, expectedProduct.UpdatedAt,
			)

			mock.ExpectQuery(expectedSQL).WithArgs(int64(42)).WillReturnRows(rows)

			// Act
			product, err := repo.GetProductByID(ctx, 42)

			// Assert
			require.NoError(t, err, "GetProductByID should not return an error when product is found")
			assert.Equal(t, expectedProduct, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, 999)

			// Assert
			require.Error(t, err, "GetProductByID should return an error when product is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("CreateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO products (name, category, quantity, price, description) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			product := &models.Product{
				Name:        "Laptop Pro",
				Category:    "Electronics",
				Quantity:    15,
				Price:       1299.99,
				Description: stringPtr("High-performance laptop"),
			}
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.Category, product.Quantity, product.Price, "High-performance laptop").
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(int64(7), now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err, "CreateProduct should not return an error on success")
			assert.Equal(t, int64(7), product.ID, "Product ID should be backend-assigned")
			assert.WithinDuration(t, now, product.CreatedAt, time.Second)
			assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NilDescription", func(t *testing.T) {
			// Arrange
			product := &models.Product{
				Name:     "Bare Product",
				Category: "Misc",
				Quantity: 1,
				Price:    0.99,
			}
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.Category, product.Quantity, product.Price, nil).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(int64(8), now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err, "CreateProduct should accept a nil description")
			assert.Equal(t, int64(8), product.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			product := &models.Product{Name: "Error Product", Category: "Misc", Quantity: 5, Price: 10.00}
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Name, product.Category, product.Quantity, product.Price, nil).
				WillReturnError(dbError)

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err, "CreateProduct should return an error on database failure")
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE products SET name = $1, category = $2, quantity = $3, price = $4, description = $5, updated_at = NOW() WHERE id = $6 RETURNING updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			req := &models.UpdateProductRequest{
				Name:        stringPtr("Updated Product"),
				Category:    stringPtr("Updated Category"),
				Quantity:    int64Ptr(15),
				Price:       float64Ptr(150.00),
				Description: stringPtr("Updated Description"),
			}

			mock.ExpectQuery(expectedSQL).
				WithArgs("Updated Product", "Updated Category", int64(15), 150.00, "Updated Description", int64(3)).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

			// Act
			err := repo.UpdateProduct(ctx, 3, req)

			// Assert
			require.NoError(t, err, "UpdateProduct should not return an error on success")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("AbsentFieldsWrittenAsNull", func(t *testing.T) {
			// Arrange
			req := &models.UpdateProductRequest{
				Category: stringPtr("Partial"),
				Quantity: int64Ptr(1),
				Price:    float64Ptr(1.00),
			}
			constraintErr := errors.New(`pq: null value in column "name" violates not-null constraint`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(nil, "Partial", int64(1), 1.00, nil, int64(3)).
				WillReturnError(constraintErr)

			// Act
			err := repo.UpdateProduct(ctx, 3, req)

			// Assert
			require.Error(t, err, "A missing required field should surface the constraint violation")
			assert.ErrorIs(t, err, constraintErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			req := &models.UpdateProductRequest{
				Name:     stringPtr("Missing Product"),
				Category: stringPtr("Misc"),
				Quantity: int64Ptr(2),
				Price:    float64Ptr(5.00),
			}

			mock.ExpectQuery(expectedSQL).
				WithArgs("Missing Product", "Misc", int64(2), 5.00, nil, int64(999)).
				WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateProduct(ctx, 999, req)

			// Assert
			require.Error(t, err, "UpdateProduct should return an error if the product is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1 RETURNING id`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(int64(5)).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

			// Act
			err := repo.DeleteProduct(ctx, 5)

			// Assert
			require.NoError(t, err, "DeleteProduct should not return an error on success")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.DeleteProduct(ctx, 5)

			// Assert
			require.Error(t, err, "A repeated delete should report not found, not succeed")
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Stats", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT COUNT(*) AS total_products, COALESCE(SUM(quantity), 0) AS total_items, COUNT(DISTINCT category) AS categories, COALESCE(SUM(quantity * price), 0) AS total_value FROM products`)

		statsCols := []string{"total_products", "total_items", "categories", "total_value"}

		t.Run("Success", func(t *testing.T) {
			// Arrange: rows (qty=2, price=10.0) and (qty=3, price=5.0)
			mock.ExpectQuery(expectedSQL).
				WillReturnRows(sqlmock.NewRows(statsCols).AddRow(int64(2), int64(5), int64(2), 35.0))

			// Act
			stats, err := repo.Stats(ctx)

			// Assert
			require.NoError(t, err, "Stats should not return an error on success")
			assert.Equal(t, int64(2), stats.TotalProducts)
			assert.Equal(t, int64(5), stats.TotalItems)
			assert.Equal(t, int64(2), stats.Categories)
			assert.InDelta(t, 35.0, stats.TotalValue, 0.001)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("EmptyTableYieldsZeros", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WillReturnRows(sqlmock.NewRows(statsCols).AddRow(int64(0), int64(0), int64(0), 0.0))

			// Act
			stats, err := repo.Stats(ctx)

			// Assert
			require.NoError(t, err)
			assert.Zero(t, stats.TotalProducts)
			assert.Zero(t, stats.TotalItems, "Sums over zero rows are coalesced to zero")
			assert.Zero(t, stats.Categories)
			assert.Zero(t, stats.TotalValue)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("stats query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			stats, err := repo.Stats(ctx)

			// Assert
			require.Error(t, err, "Stats should return an error on query failure")
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, stats)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
