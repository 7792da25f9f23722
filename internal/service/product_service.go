package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gramvista/internal/model"
	"gramvista/internal/repository"
)

// ProductService manages vendor catalogs. Writes and the owner listing take
// a VendorPrincipal, so user identities cannot reach them.
type ProductService interface {
	Create(ctx context.Context, vendor model.VendorPrincipal, req model.CreateProductRequest) (*model.Product, error)
	ListMine(ctx context.Context, vendor model.VendorPrincipal) ([]model.Product, error)
	FilterByType(ctx context.Context, productType string) ([]model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo, now: time.Now}
}

func (s *productService) Create(ctx context.Context, vendor model.VendorPrincipal, req model.CreateProductRequest) (*model.Product, error) {
	productType := strings.TrimSpace(req.ProductType)
	if productType == "" || req.Quantity == nil || req.Price == nil {
		return nil, fmt.Errorf("%w: productType, quantity and price are required", ErrValidation)
	}
	if *req.Quantity < 0 || *req.Price < 0 {
		return nil, fmt.Errorf("%w: quantity and price must not be negative", ErrValidation)
	}

	product := &model.Product{
		VendorID:    vendor.ID,
		ProductType: productType,
		Quantity:    *req.Quantity,
		Description: req.Description,
		Price:       *req.Price,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) ListMine(ctx context.Context, vendor model.VendorPrincipal) ([]model.Product, error) {
	products, err := s.repo.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor products from repo: %w", err)
	}
	return products, nil
}

func (s *productService) FilterByType(ctx context.Context, productType string) ([]model.Product, error) {
	products, err := s.repo.FindByType(ctx, strings.TrimSpace(productType))
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}
