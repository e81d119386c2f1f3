package request

import "storefront/internal/domain/entities"

type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

type ShopProfileRequest struct {
	ShopName    string         `json:"shop_name" binding:"required"`
	OwnerName   string         `json:"owner_name" binding:"required"`
	Phone       string         `json:"phone"`
	Address     AddressRequest `json:"address"`
	Description string         `json:"description"`
}

func (r ShopProfileRequest) ToEntity(shopID string) entities.Shop {
	return entities.Shop{
		ID:        shopID,
		ShopName:  r.ShopName,
		OwnerName: r.OwnerName,
		Phone:     r.Phone,
		Address: entities.Address{
			Street: r.Address.Street,
			City:   r.Address.City,
			State:  r.Address.State,
			Zip:    r.Address.Zip,
			Phone:  r.Address.Phone,
		},
		Description: r.Description,
	}
}
