package models

import "testing"

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"manager role", RoleManager, true},
		{"operator role", RoleOperator, true},
		{"viewer role", RoleViewer, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	manager := &User{Role: RoleManager}
	operator := &User{Role: RoleOperator}
	viewer := &User{Role: RoleViewer}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		// Admin - everything
		{"admin can manage users", admin, "manage_users", true},
		{"admin can manage bikes", admin, "manage_bikes", true},
		{"admin can view reports", admin, "view_reports", true},

		// Manager - everything except user management
		{"manager cannot manage users", manager, "manage_users", false},
		{"manager can manage bikes", manager, "manage_bikes", true},
		{"manager can manage costs", manager, "manage_costs", true},
		{"manager can view reports", manager, "view_reports", true},

		// Operator - day-to-day inventory work
		{"operator can view bikes", operator, "view_bikes", true},
		{"operator can manage costs", operator, "manage_costs", true},
		{"operator can update stage", operator, "update_stage", true},
		{"operator can view reports", operator, "view_reports", true},
		{"operator cannot manage bikes", operator, "manage_bikes", false},
		{"operator cannot manage users", operator, "manage_users", false},

		// Viewer - read-only
		{"viewer can view bikes", viewer, "view_bikes", true},
		{"viewer can view reports", viewer, "view_reports", true},
		{"viewer cannot manage costs", viewer, "manage_costs", false},
		{"viewer cannot update stage", viewer, "update_stage", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("User with role %s HasPermission(%s) = %v, want %v",
					tt.user.Role, tt.action, result, tt.expected)
			}
		})
	}
}
