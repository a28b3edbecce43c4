package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Opportunity struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Stage       string          `gorm:"size:100" json:"stage"`
	Status      string          `gorm:"size:50;default:'open'" json:"status"` // open, won, lost
	Value       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"value"`
	Currency    string          `gorm:"size:10;default:'USD'" json:"currency"`

	LeadID   *uint `gorm:"index" json:"lead_id"`
	PersonID *uint `gorm:"index" json:"person_id"`

	ExpectedCloseAt *time.Time `json:"expected_close_at"`
	ReasonLost      string     `gorm:"size:255" json:"reason_lost"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Lead   *Lead   `gorm:"foreignKey:LeadID" json:"-"`
	Person *Person `gorm:"foreignKey:PersonID" json:"-"`
}

func (Opportunity) TableName() string { return "opportunities" }
