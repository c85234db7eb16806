package service

import (
	"context"

	"github.com/dkrasnov/product-catalog-api/internal/models"
	"github.com/dkrasnov/product-catalog-api/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all stored products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product and returns it with its assigned ID
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.repo.Insert(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
