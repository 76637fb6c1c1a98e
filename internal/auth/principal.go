package auth

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
)

// Principal is a resolved caller identity: user id plus application role.
// A nil *Principal means the request is unauthenticated.
type Principal struct {
	UserID uuid.UUID           `json:"user_id"`
	Email  string              `json:"email"`
	Role   models.UserRoleName `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}

// IsAgent reports whether the principal can work tickets (technician or admin)
func (p *Principal) IsAgent() bool {
	return p != nil && (p.Role == models.RoleTechnician || p.Role == models.RoleAdmin)
}
