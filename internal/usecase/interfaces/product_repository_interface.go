package interfaces

import (
	"context"

	"storefront/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListByShop(ctx context.Context, shopID string) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
