package service

import (
	"testing"

	"leavedesk/internal/models"
)

func TestAuthorizeMatrix(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		op      Operation
		allowed bool
	}{
		{"Employee Submit", models.RoleEmployee, OpSubmit, true},
		{"Employee ListOwn", models.RoleEmployee, OpListOwn, true},
		{"Employee ListActionable", models.RoleEmployee, OpListActionable, false},
		{"Employee Decide", models.RoleEmployee, OpDecide, false},
		{"Supervisor Submit", models.RoleSupervisor, OpSubmit, true},
		{"Supervisor ListOwn", models.RoleSupervisor, OpListOwn, true},
		{"Supervisor ListActionable", models.RoleSupervisor, OpListActionable, true},
		{"Supervisor Decide", models.RoleSupervisor, OpDecide, true},
		{"Admin Submit", models.RoleAdmin, OpSubmit, true},
		{"Admin ListOwn", models.RoleAdmin, OpListOwn, true},
		{"Admin ListActionable", models.RoleAdmin, OpListActionable, true},
		{"Admin Decide", models.RoleAdmin, OpDecide, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.op)
			if tt.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tt.allowed {
				wantAppError(t, err, models.CodeForbidden)
			}
		})
	}
}

func TestAuthorizeDeniesUnknownRole(t *testing.T) {
	for _, op := range []Operation{OpSubmit, OpListOwn, OpListActionable, OpDecide} {
		err := Authorize(models.Role("contractor"), op)
		wantAppError(t, err, models.CodeForbidden)
	}
}

func TestAuthorizeDeniesUnknownOperation(t *testing.T) {
	err := Authorize(models.RoleAdmin, Operation("export"))
	wantAppError(t, err, models.CodeForbidden)
}
