package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	ListRoleInheritance(ctx context.Context) ([]RoleInheritance, error)
	// SeedDefaults inserts the default rows, leaving existing rows alone.
	SeedDefaults(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) ListRoleInheritance(ctx context.Context) ([]RoleInheritance, error) {
	var result []RoleInheritance
	err := r.db.WithContext(ctx).Order("role, parent").Find(&result).Error
	return result, err
}

func (r *repository) SeedDefaults(ctx context.Context) error {
	perms := append([]RolePermission(nil), DefaultPermissions...)
	inherits := append([]RoleInheritance(nil), DefaultInheritance...)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&perms).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&inherits).Error
	})
}
