package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/dkrasnov/product-catalog-api/internal/models"
)

func TestInMemoryInsert_AssignsIncreasingIDs(t *testing.T) {
	repo := NewInMemoryProductRepository()
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		product := models.Product{Name: "Keyboard", Price: 49.99}
		if err := repo.Insert(ctx, &product); err != nil {
			t.Fatalf("failed to insert product: %v", err)
		}

		if product.ID <= lastID {
			t.Errorf("expected ID greater than %d, got %d", lastID, product.ID)
		}
		lastID = product.ID
	}
}

func TestInMemoryInsert_IgnoresSuppliedID(t *testing.T) {
	repo := NewInMemoryProductRepository()

	product := models.Product{ID: 999, Name: "Keyboard", Price: 49.99}
	if err := repo.Insert(context.Background(), &product); err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}

	if product.ID != 1 {
		t.Errorf("expected assigned ID 1, got %d", product.ID)
	}
}

func TestInMemoryGetByID(t *testing.T) {
	repo := NewInMemoryProductRepository()
	ctx := context.Background()

	product := models.Product{Name: "Monitor", Price: 199.50}
	if err := repo.Insert(ctx, &product); err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}

	fetched, err := repo.GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("failed to get product: %v", err)
	}

	if *fetched != product {
		t.Errorf("expected %+v, got %+v", product, *fetched)
	}

	if _, err := repo.GetByID(ctx, product.ID+1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryGetAll(t *testing.T) {
	repo := NewInMemoryProductRepository()
	ctx := context.Background()

	products, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to list products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty repository, got %d products", len(products))
	}

	for i := 0; i < 2; i++ {
		product := models.Product{Name: "Keyboard", Price: 49.99}
		if err := repo.Insert(ctx, &product); err != nil {
			t.Fatalf("failed to insert product: %v", err)
		}
	}

	products, err = repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to list products: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}

func TestUnavailableRepository(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewUnavailableProductRepository(cause)
	ctx := context.Background()

	if _, err := repo.GetAll(ctx); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable from GetAll, got %v", err)
	}

	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable from GetByID, got %v", err)
	}

	product := models.Product{Name: "Keyboard", Price: 49.99}
	if err := repo.Insert(ctx, &product); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable from Insert, got %v", err)
	}
}
