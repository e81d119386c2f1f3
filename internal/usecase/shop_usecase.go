package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrInvalidShopProfile = errors.New("invalid shop profile")
)

// IShopUseCase exposes the shop-profile operations behind the profile view.

type IShopUseCase interface {
	GetShop(ctx context.Context, shopID string) (entities.Shop, error)
	UpdateProfile(ctx context.Context, s entities.Shop) (entities.Shop, error)
}

type ShopUseCase struct {
	repo interfaces.IShopRepository
}

var _ IShopUseCase = (*ShopUseCase)(nil)

func NewShopUseCase(repo interfaces.IShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

func (u *ShopUseCase) GetShop(ctx context.Context, shopID string) (entities.Shop, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.Shop{}, ErrInvalidShopID
	}

	s, err := u.repo.GetByID(ctx, shopID)
	if err != nil {
		return entities.Shop{}, err
	}
	if s.ID == "" {
		return entities.Shop{}, ErrShopNotFound
	}
	return s, nil
}

func (u *ShopUseCase) UpdateProfile(ctx context.Context, s entities.Shop) (entities.Shop, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Shop{}, ErrInvalidShopID
	}
	s.ShopName = strings.TrimSpace(s.ShopName)
	s.OwnerName = strings.TrimSpace(s.OwnerName)
	if s.ShopName == "" || s.OwnerName == "" {
		return entities.Shop{}, ErrInvalidShopProfile
	}

	existing, err := u.GetShop(ctx, s.ID)
	if err != nil {
		return entities.Shop{}, err
	}

	// Email and creation time belong to the auth collaborator.
	s.Email = existing.Email
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdateProfile(ctx, s)
	if err != nil {
		return entities.Shop{}, err
	}
	if updated.ID == "" {
		return entities.Shop{}, ErrShopNotFound
	}
	return updated, nil
}
