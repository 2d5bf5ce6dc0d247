package domain

import (
	"slices"
	"strings"
	"time"
)

// UserRole is the coarse role a user holds in the dashboard.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "gestor"
	RoleAnalyst UserRole = "analista"
	RoleViewer  UserRole = "visualizador"
)

// Action is something a role may be allowed to do.
type Action string

const (
	ActionCreate Action = "criar"
	ActionEdit   Action = "editar"
	ActionDelete Action = "deletar"
	ActionExport Action = "exportar"
	ActionManage Action = "gerenciar"
	ActionView   Action = "visualizar"
)

var rolePermissions = map[UserRole][]Action{
	RoleAdmin:   {ActionCreate, ActionEdit, ActionDelete, ActionExport, ActionManage},
	RoleManager: {ActionCreate, ActionEdit, ActionExport},
	RoleAnalyst: {ActionCreate, ActionEdit, ActionExport},
	RoleViewer:  {ActionView},
}

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// HasPermission reports whether the role may perform the action.
// Every known role may view.
func (r UserRole) HasPermission(action Action) bool {
	actions, ok := rolePermissions[r]
	if !ok {
		return false
	}
	if action == ActionView {
		return true
	}
	return slices.Contains(actions, action)
}

// User is an authenticated operator of the dashboard.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// DisplayName is the name shown in greetings. It falls back to the email local part
// and carries no authorization meaning.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// GoogleUserInfo holds the verified claims extracted from a Google ID token.
type GoogleUserInfo struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}
