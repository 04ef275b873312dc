package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/rbac"
	"go-timesheet/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	perms    []rbac.RolePermission
	inherits []rbac.RoleInheritance
	err      error
}

func (f *fakeRepo) ListRolePermissions(ctx context.Context) ([]rbac.RolePermission, error) {
	return f.perms, f.err
}

func (f *fakeRepo) ListRoleInheritance(ctx context.Context) ([]rbac.RoleInheritance, error) {
	return f.inherits, f.err
}

func (f *fakeRepo) SeedDefaults(ctx context.Context) error { return nil }

func newDefaultService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)

	svc := rbac.NewService(&fakeRepo{perms: rbac.DefaultPermissions, inherits: rbac.DefaultInheritance}, enforcer)
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newDefaultService(t)

	cases := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		want     bool
	}{
		{"employee submits", domain.RoleEmployee, rbac.ResourceTimesheet, rbac.ActionSubmit, true},
		{"employee cannot approve", domain.RoleEmployee, rbac.ResourceTimesheet, rbac.ActionApprove, false},
		{"manager approves", domain.RoleManager, rbac.ResourceTimesheet, rbac.ActionApprove, true},
		{"manager inherits entry create", domain.RoleManager, rbac.ResourceTimeEntry, rbac.ActionCreate, true},
		{"super admin inherits approve", domain.RoleSuperAdmin, rbac.ResourceTimesheet, rbac.ActionReview, true},
		{"finance admin reads", domain.RoleFinanceAdmin, rbac.ResourceTimesheet, rbac.ActionRead, true},
		{"finance admin cannot approve", domain.RoleFinanceAdmin, rbac.ResourceTimesheet, rbac.ActionApprove, false},
		{"unknown role", domain.Role("GUEST"), rbac.ResourceTimesheet, rbac.ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     string(tc.role),
				Resource: tc.resource,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}

func TestRBACService_LoadPolicy(t *testing.T) {
	t.Run("reload replaces previous policy", func(t *testing.T) {
		enforcer, err := infra.NewEnforcer("")
		assert.NoError(t, err)

		repo := &fakeRepo{perms: []rbac.RolePermission{{Role: "MANAGER", Resource: "timesheet", Action: "approve"}}}
		svc := rbac.NewService(repo, enforcer)
		assert.NoError(t, svc.LoadPolicy(context.Background()))

		allowed, _ := svc.Enforce(domain.EnforceRequest{Role: "MANAGER", Resource: "timesheet", Action: "approve"})
		assert.True(t, allowed)

		repo.perms = nil
		assert.NoError(t, svc.LoadPolicy(context.Background()))

		allowed, _ = svc.Enforce(domain.EnforceRequest{Role: "MANAGER", Resource: "timesheet", Action: "approve"})
		assert.False(t, allowed)
	})

	t.Run("negative repository error", func(t *testing.T) {
		enforcer, err := infra.NewEnforcer("")
		assert.NoError(t, err)

		svc := rbac.NewService(&fakeRepo{err: errors.New("db down")}, enforcer)
		assert.Error(t, svc.LoadPolicy(context.Background()))
	})
}
