package dto

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Name     string          `json:"name" binding:"max=120"`
	Password string          `json:"password" binding:"required,min=8,max=72"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin gestor analista visualizador"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID      string          `json:"userID"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Role        domain.UserRole `json:"role"`
	Permissions []domain.Action `json:"permissions"`
	CreatedAt   time.Time       `json:"createdAt"`
}

var allActions = []domain.Action{
	domain.ActionView, domain.ActionCreate, domain.ActionEdit,
	domain.ActionDelete, domain.ActionExport, domain.ActionManage,
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	perms := make([]domain.Action, 0, len(allActions))
	for _, a := range allActions {
		if u.Role.HasPermission(a) {
			perms = append(perms, a)
		}
	}
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		Name:        u.Name,
		DisplayName: u.DisplayName(),
		Role:        u.Role,
		Permissions: perms,
		CreatedAt:   u.CreatedAt,
	}
}
