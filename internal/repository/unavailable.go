package repository

import (
	"context"
	"fmt"

	"github.com/dkrasnov/product-catalog-api/internal/models"
)

// UnavailableProductRepository satisfies ProductRepository when the database
// could not be reached at startup. Every call reports the stored cause so the
// server keeps serving in a degraded state instead of exiting.
type UnavailableProductRepository struct {
	cause error
}

// NewUnavailableProductRepository creates a repository that fails every call with cause
func NewUnavailableProductRepository(cause error) *UnavailableProductRepository {
	return &UnavailableProductRepository{
		cause: cause,
	}
}

func (r *UnavailableProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, r.cause)
}

func (r *UnavailableProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, r.cause)
}

func (r *UnavailableProductRepository) Insert(ctx context.Context, product *models.Product) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, r.cause)
}
