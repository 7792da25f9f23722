package repository

import (
	"context"
	"fmt"

	"gramvista/internal/model"
)

// ProductRepository defines operations for product data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByVendor(ctx context.Context, vendorID int64) ([]model.Product, error)
	FindByType(ctx context.Context, productType string) ([]model.Product, error)
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, vendor_id, product_type, quantity, description, price, created_at`

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (vendor_id, product_type, quantity, description, price, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.VendorID, p.ProductType, p.Quantity, p.Description, p.Price, p.CreatedAt).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByVendor lists products owned by a vendor, newest first
func (r *productRepository) FindByVendor(ctx context.Context, vendorID int64) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $1 ORDER BY created_at DESC, id DESC`
	return r.query(ctx, sql, vendorID)
}

// FindByType lists products of one type across all vendors
func (r *productRepository) FindByType(ctx context.Context, productType string) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE product_type = $1 ORDER BY created_at DESC, id DESC`
	return r.query(ctx, sql, productType)
}

func (r *productRepository) query(ctx context.Context, sql string, args ...any) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.VendorID, &p.ProductType, &p.Quantity, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}
