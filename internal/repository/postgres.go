package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dkrasnov/product-catalog-api/internal/models"
)

// OpenPostgres connects to the database identified by the connection URL.
func OpenPostgres(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return db, nil
}

// PostgresProductRepository implements ProductRepository on top of GORM.
type PostgresProductRepository struct {
	db *gorm.DB
}

// NewPostgresProductRepository creates a product repository backed by the given database
func NewPostgresProductRepository(db *gorm.DB) *PostgresProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

// EnsureSchema creates the products table if it does not exist.
// Rerunning against an existing schema is a no-op.
func (r *PostgresProductRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the two sample rows when the products table has no rows.
// It runs after EnsureSchema during startup and does nothing otherwise.
func (r *PostgresProductRepository) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []models.Product{
		{Name: "Sample Laptop", Price: 999.99},
		{Name: "Sample Mouse", Price: 29.99},
	}
	if err := r.db.WithContext(ctx).Create(&seed).Error; err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}
	return nil
}

// GetAll returns all products, ordering unspecified
func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// GetByID returns a product by primary key
func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching product %d: %w", id, err)
	}
	return &product, nil
}

// Insert stores the product; GORM writes the generated ID back into it
func (r *PostgresProductRepository) Insert(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}
