package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the read side of the users table. Accounts and credentials are
// managed elsewhere; this service only needs identity, role and manager.
type User struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	FirstName  string         `gorm:"column:first_name;type:varchar(100);not null"`
	LastName   string         `gorm:"column:last_name;type:varchar(100);not null"`
	Role       string         `gorm:"column:role;type:varchar(30);not null;default:EMPLOYEE"`
	Position   string         `gorm:"column:position;type:varchar(150)"`
	Department string         `gorm:"column:department;type:varchar(150)"`
	ManagerID  *uuid.UUID     `gorm:"column:manager_id;type:uuid;index"`
	IsActive   bool           `gorm:"column:is_active;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
