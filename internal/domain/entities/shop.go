package entities

import "time"

// Shop is the shopkeeper profile. It is created by the signup flow (external
// auth collaborator); the dashboard only reads and edits it.
//
// Storage model:
//   - PK: id (the shopkeeper's account id)
type Shop struct {
	ID          string    `json:"id"`
	ShopName    string    `json:"shop_name"`
	OwnerName   string    `json:"owner_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     Address   `json:"address"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
