package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inventrack/inventory-service/internal/config"

	_ "github.com/lib/pq"
)

// Repository owns the connection pool. It is constructed once in main and
// closed on shutdown; nothing else holds the *sql.DB.
type Repository struct {
	DB      *sql.DB
	Product ProductRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	return &Repository{
		DB:      db,
		Product: NewProductRepo(db),
	}, nil
}

func (p *Repository) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
