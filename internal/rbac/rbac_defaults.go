package rbac

import "go-timesheet/internal/domain"

const (
	ResourceTimesheet = "timesheet"
	ResourceTimeEntry = "time_entry"

	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionSubmit  = "submit"
	ActionApprove = "approve"
	ActionReview  = "review"
	ActionExport  = "export"
)

// DefaultPermissions is seeded into role_permissions when the table is
// empty. Ownership checks still happen in the services.
var DefaultPermissions = []RolePermission{
	{Role: string(domain.RoleEmployee), Resource: ResourceTimesheet, Action: ActionRead},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimesheet, Action: ActionCreate},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimesheet, Action: ActionSubmit},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimesheet, Action: ActionExport},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimeEntry, Action: ActionRead},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimeEntry, Action: ActionCreate},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimeEntry, Action: ActionUpdate},
	{Role: string(domain.RoleEmployee), Resource: ResourceTimeEntry, Action: ActionDelete},
	{Role: string(domain.RoleManager), Resource: ResourceTimesheet, Action: ActionApprove},
	{Role: string(domain.RoleManager), Resource: ResourceTimesheet, Action: ActionReview},
}

var DefaultInheritance = []RoleInheritance{
	{Role: string(domain.RoleManager), Parent: string(domain.RoleEmployee)},
	{Role: string(domain.RoleFinanceAdmin), Parent: string(domain.RoleEmployee)},
	{Role: string(domain.RoleSuperAdmin), Parent: string(domain.RoleManager)},
}
