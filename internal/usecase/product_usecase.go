package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidPrice       = errors.New("invalid product price")
	ErrInvalidStock       = errors.New("invalid product stock")
	ErrProductNotOwned    = errors.New("product belongs to another shop")
)

// IProductUseCase exposes the catalog operations behind the products view.

type IProductUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, shopID, productID string) (entities.Product, error)
	ListProducts(ctx context.Context, shopID string) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, shopID, productID string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validateProduct(&p); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetProduct(ctx context.Context, shopID, productID string) (entities.Product, error) {
	shopID, productID, err := cleanProductIDs(shopID, productID)
	if err != nil {
		return entities.Product{}, err
	}
	return u.loadOwned(ctx, shopID, productID)
}

func (u *ProductUseCase) ListProducts(ctx context.Context, shopID string) ([]entities.Product, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}
	return u.repo.ListByShop(ctx, shopID)
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if err := validateProduct(&p); err != nil {
		return entities.Product{}, err
	}

	existing, err := u.loadOwned(ctx, p.ShopID, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) DeleteProduct(ctx context.Context, shopID, productID string) error {
	shopID, productID, err := cleanProductIDs(shopID, productID)
	if err != nil {
		return err
	}
	if _, err := u.loadOwned(ctx, shopID, productID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, productID)
}

func (u *ProductUseCase) loadOwned(ctx context.Context, shopID, productID string) (entities.Product, error) {
	p, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	if p.ShopID != shopID {
		return entities.Product{}, ErrProductNotOwned
	}
	return p, nil
}

func validateProduct(p *entities.Product) error {
	p.ShopID = strings.TrimSpace(p.ShopID)
	if p.ShopID == "" {
		return ErrInvalidShopID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrInvalidProductName
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

func cleanProductIDs(shopID, productID string) (string, string, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return "", "", ErrInvalidShopID
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return "", "", ErrInvalidProductID
	}
	return shopID, productID, nil
}
