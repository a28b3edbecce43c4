package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletTransaction is an append-only ledger entry. Amount is stored as a
// positive magnitude; the type carries the sign semantics. BalanceAfter
// snapshots available_balance right after the mutation, so replaying the log
// from zero must reproduce the wallet's current available balance.
type WalletTransaction struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	WalletID            uint            `gorm:"not null;index" json:"wallet_id"`
	Type                string          `gorm:"size:30;not null;index" json:"type"`
	Amount              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	BalanceAfter        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance_after"`
	RelatedWithdrawalID *uint           `gorm:"index" json:"related_withdrawal_id"`
	Description         string          `gorm:"size:255" json:"description"`
	CreatedAt           time.Time       `json:"created_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	Wallet Wallet `gorm:"foreignKey:WalletID" json:"-"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
