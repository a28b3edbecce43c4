package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionRecord tracks a commission owed to a salesperson for an
// opportunity. Marking one paid credits the salesperson's wallet.
type CommissionRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedByID   uint            `gorm:"not null" json:"created_by_id"`
	SalespersonID uint            `gorm:"not null;index" json:"salesperson_id"` // person id
	OpportunityID *uint           `gorm:"index" json:"opportunity_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Percentage    decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentage"`
	Status        string          `gorm:"size:20;not null;index;default:'pending'" json:"status"` // pending, paid, canceled
	PaidAt        *time.Time      `json:"paid_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	Salesperson Person       `gorm:"foreignKey:SalespersonID" json:"-"`
	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID" json:"-"`
}

func (CommissionRecord) TableName() string { return "commission_records" }
