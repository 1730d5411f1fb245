package service

import "leavedesk/internal/models"

// Operation identifies one of the externally exposed workflow operations.
type Operation string

const (
	OpSubmit         Operation = "submit"
	OpListOwn        Operation = "list_own"
	OpListActionable Operation = "list_actionable"
	OpDecide         Operation = "decide"
)

// Authorize maps an operation to its allowed roles. The switches are
// exhaustive over the declared role and operation sets; an unknown role
// or operation is denied rather than let through.
func Authorize(role models.Role, op Operation) error {
	switch op {
	case OpSubmit, OpListOwn:
		switch role {
		case models.RoleEmployee, models.RoleSupervisor, models.RoleAdmin:
			return nil
		default:
			return models.NewForbiddenError("unknown role " + string(role))
		}
	case OpListActionable, OpDecide:
		switch role {
		case models.RoleSupervisor, models.RoleAdmin:
			return nil
		case models.RoleEmployee:
			return models.NewForbiddenError("supervisor or admin role required")
		default:
			return models.NewForbiddenError("unknown role " + string(role))
		}
	default:
		return models.NewForbiddenError("unknown operation " + string(op))
	}
}
