package domain_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserRole_HasPermission(t *testing.T) {
	tests := []struct {
		role   domain.UserRole
		action domain.Action
		want   bool
	}{
		{domain.RoleAdmin, domain.ActionDelete, true},
		{domain.RoleAdmin, domain.ActionManage, true},
		{domain.RoleAdmin, domain.ActionView, true},
		{domain.RoleManager, domain.ActionCreate, true},
		{domain.RoleManager, domain.ActionExport, true},
		{domain.RoleManager, domain.ActionDelete, false},
		{domain.RoleManager, domain.ActionManage, false},
		{domain.RoleAnalyst, domain.ActionEdit, true},
		{domain.RoleAnalyst, domain.ActionDelete, false},
		{domain.RoleViewer, domain.ActionView, true},
		{domain.RoleViewer, domain.ActionCreate, false},
		{domain.RoleViewer, domain.ActionExport, false},
		{domain.UserRole("intruso"), domain.ActionView, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.HasPermission(tt.action))
		})
	}
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleViewer.IsValid())
	assert.False(t, domain.UserRole("").IsValid())
	assert.False(t, domain.UserRole("root").IsValid())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana Souza", domain.User{Name: "Ana Souza", Email: "ana@empresa.com"}.DisplayName())
	assert.Equal(t, "joao.silva", domain.User{Email: "joao.silva@empresa.com"}.DisplayName())
	assert.Equal(t, "", domain.User{}.DisplayName())
}
