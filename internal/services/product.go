package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/inventrack/inventory-service/internal/errors"
	"github.com/inventrack/inventory-service/internal/models"
	repository "github.com/inventrack/inventory-service/internal/repositories"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.Stats, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError(err.Error()).WithError(err)
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError(err.Error()).WithError(err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Description: req.Description,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError(err.Error()).WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) error {

	err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}

		return errors.DatabaseError(err.Error()).WithError(err)
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}

		return errors.DatabaseError(err.Error()).WithError(err)
	}

	return nil
}

func (s *productService) Stats(ctx context.Context) (*models.Stats, error) {

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, errors.DatabaseError(err.Error()).WithError(err)
	}

	return stats, nil
}
