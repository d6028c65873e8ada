package application

import "github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"

// Identity is the verified caller identity attached to a request by the
// authentication gate and consumed by the authorization rules.
type Identity struct {
	UserID string      `json:"userId"`
	Role   entity.Role `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}
