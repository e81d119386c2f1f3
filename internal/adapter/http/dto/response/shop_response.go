package response

import (
	"time"

	"storefront/internal/domain/entities"
)

type ShopResponse struct {
	ShopID      string           `json:"shop_id"`
	ID          string           `json:"id"`
	ShopName    string           `json:"shop_name"`
	OwnerName   string           `json:"owner_name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Address     entities.Address `json:"address"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func FromShop(s entities.Shop) ShopResponse {
	return ShopResponse{
		ShopID:      s.ID,
		ID:          s.ID,
		ShopName:    s.ShopName,
		OwnerName:   s.OwnerName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
