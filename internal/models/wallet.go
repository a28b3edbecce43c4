package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet holds a person's running commission balance. One wallet per person,
// created at registration. Balance fields only move through WalletService.
type Wallet struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	PersonID            uint            `gorm:"uniqueIndex;not null" json:"person_id"`
	Currency            string          `gorm:"size:10;not null;default:'USD'" json:"currency"`
	AvailableBalance    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"available_balance"`
	PendingPayoutAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"pending_payout_amount"`
	LifetimeEarnings    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"lifetime_earnings"`
	LifetimeWithdrawals decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"lifetime_withdrawals"`
	IsActive            bool            `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	Person Person `gorm:"foreignKey:PersonID" json:"-"`
}

func (Wallet) TableName() string { return "wallets" }
