package models

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int64     `json:"quantity"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Quantity and Price are pointers so that an explicit zero passes the
// presence gate while an absent field fails it.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Quantity    *int64   `json:"quantity" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description *string  `json:"description"`
}

// UpdateProductRequest carries no validation tags: absent fields are written
// as-is and NULL writes into NOT NULL columns are left to the database to
// reject. Create and update are asymmetric on purpose.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int64   `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

type CreateProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalItems    int64   `json:"total_items"`
	Categories    int64   `json:"categories"`
	TotalValue    float64 `json:"total_value"`
}
