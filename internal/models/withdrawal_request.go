package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WithdrawalRequest struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	WalletID      uint            `gorm:"not null;index" json:"wallet_id"`
	RequestedByID uint            `gorm:"not null;index" json:"requested_by_id"` // person id
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:10;not null;default:'USD'" json:"currency"`
	Status        string          `gorm:"size:20;not null;index;default:'requested'" json:"status"`
	PayoutMethod  string          `gorm:"size:20;not null" json:"payout_method"` // paypal | bank_transfer

	// Bank transfer payout details.
	BankAccountHolderName string `gorm:"size:255" json:"bank_account_holder_name,omitempty"`
	BankAccountNumber     string `gorm:"size:50" json:"bank_account_number,omitempty"`
	BankName              string `gorm:"size:255" json:"bank_name,omitempty"`
	BankIFSCCode          string `gorm:"size:50" json:"bank_ifsc_code,omitempty"`

	// PayPal payout details.
	PaypalEmail string `gorm:"size:255" json:"paypal_email,omitempty"`

	AdminComments string         `gorm:"size:500" json:"admin_comments"`
	ReferenceID   string         `gorm:"size:100;uniqueIndex" json:"reference_id"`
	RequestedAt   time.Time      `json:"requested_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Wallet      Wallet `gorm:"foreignKey:WalletID" json:"-"`
	RequestedBy Person `gorm:"foreignKey:RequestedByID" json:"-"`
}

func (WithdrawalRequest) TableName() string { return "withdrawal_requests" }
