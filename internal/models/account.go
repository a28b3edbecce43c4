package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is a client company record. ShopDomain links it back to the
// affiliate attribution pipeline once a referred shop becomes a client.
type Account struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ShopDomain *string `gorm:"uniqueIndex;size:255" json:"shop_domain"`

	CompanyName   string     `gorm:"size:255;not null" json:"company_name"`
	Industry      string     `gorm:"size:100" json:"industry"`
	CompanySize   string     `gorm:"size:50" json:"company_size"`
	Description   string     `gorm:"size:2000" json:"description"`
	FoundedDate   *time.Time `json:"founded_date"`
	AnnualRevenue string     `gorm:"size:100" json:"annual_revenue"`

	Location    string `gorm:"size:255" json:"location"`
	FullAddress string `gorm:"size:255" json:"full_address"`
	Email       string `gorm:"size:255" json:"email"`
	PhoneCode   string `gorm:"size:20" json:"phone_code"`
	PhoneNo     string `gorm:"size:50" json:"phone_no"`
	Website     string `gorm:"size:255" json:"website"`

	AccountType string `gorm:"size:100;not null" json:"account_type"`
	ClientType  string `gorm:"size:100;not null" json:"client_type"`
	Status      string `gorm:"size:50;not null" json:"status"`
	Priority    string `gorm:"size:50" json:"priority"`
	Segment     string `gorm:"size:100" json:"segment"`
	Territory   string `gorm:"size:100" json:"territory"`
	Source      string `gorm:"size:100" json:"source"`

	OwnerID         uint  `gorm:"not null;index" json:"owner_id"`
	IsSubsidiary    bool  `gorm:"default:false" json:"is_subsidiary"`
	ParentAccountID *uint `gorm:"index" json:"parent_account_id"`

	LastActivityAt *time.Time     `json:"last_activity_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Owner         User     `gorm:"foreignKey:OwnerID" json:"-"`
	ParentAccount *Account `gorm:"foreignKey:ParentAccountID" json:"-"`
}

func (Account) TableName() string { return "accounts" }
