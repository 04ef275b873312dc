package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Code      string    `gorm:"type:varchar(30);uniqueIndex"`
	Color     string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Code      string    `gorm:"type:varchar(30);uniqueIndex"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Client *Client `gorm:"foreignKey:ClientID"`
}

type Task struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name       string              `gorm:"type:varchar(200);not null"`
	Type       string              `gorm:"type:varchar(50)"`
	IsBillable bool                `gorm:"not null"`
	HourlyRate decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Project *Project `gorm:"foreignKey:ProjectID"`
}

func (p *Project) ClientName() string {
	if p == nil || p.Client == nil {
		return ""
	}
	return p.Client.Name
}
