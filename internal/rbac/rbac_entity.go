package rbac

import "time"

// RolePermission grants one role an action on a resource.
type RolePermission struct {
	Role      string `gorm:"type:varchar(30);primaryKey"`
	Resource  string `gorm:"type:varchar(50);primaryKey"`
	Action    string `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time
}

// RoleInheritance makes Role hold every permission of Parent.
type RoleInheritance struct {
	Role   string `gorm:"type:varchar(30);primaryKey"`
	Parent string `gorm:"type:varchar(30);primaryKey"`
}
