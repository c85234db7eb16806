package models

// Product is the sole persisted entity. The ID is assigned by the database on
// insert and never changes afterwards.
type Product struct {
	ID    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `json:"name" gorm:"type:text;not null"`
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// CreateProductRequest represents the POST /products body.
// Any client-supplied id is ignored; the stored record gets a generated one.
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
