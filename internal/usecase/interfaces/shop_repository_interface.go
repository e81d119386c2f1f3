package interfaces

import (
	"context"

	"storefront/internal/domain/entities"
)

// IShopRepository abstracts DynamoDB persistence for Shop profiles.

type IShopRepository interface {
	GetByID(ctx context.Context, id string) (entities.Shop, error)
	// UpdateProfile partially updates the editable profile fields. Email and
	// id are immutable (owned by the auth collaborator).
	UpdateProfile(ctx context.Context, s entities.Shop) (entities.Shop, error)
}
