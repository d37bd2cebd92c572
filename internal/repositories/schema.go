package repository

import (
	"context"
	"fmt"
)

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

type sampleProduct struct {
	name        string
	category    string
	quantity    int64
	price       float64
	description string
}

var sampleProducts = []sampleProduct{
	{"Laptop Pro", "Electronics", 15, 1299.99, "High-performance laptop"},
	{"Wireless Mouse", "Electronics", 45, 29.99, "Ergonomic wireless mouse"},
	{"Office Chair", "Furniture", 8, 199.99, "Comfortable office chair"},
	{"Coffee Beans", "Food", 120, 12.99, "Premium coffee beans"},
	{"Notebook Set", "Office Supplies", 200, 8.99, "Pack of 3 notebooks"},
}

// InitSchema creates the products table if it is absent and seeds the sample
// rows when the table is empty. Safe to run repeatedly: a populated table is
// never seeded again.
func (p *Repository) InitSchema(ctx context.Context) error {

	if _, err := p.DB.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("creating products table: %w", err)
	}

	var count int64

	if err := p.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}

	if count > 0 {
		return nil
	}

	query := `INSERT INTO products (name, category, quantity, price, description) VALUES ($1, $2, $3, $4, $5)`

	for _, sample := range sampleProducts {
		if _, err := p.DB.ExecContext(ctx, query, sample.name, sample.category, sample.quantity, sample.price, sample.description); err != nil {
			return fmt.Errorf("seeding product %q: %w", sample.name, err)
		}
	}

	return nil
}
