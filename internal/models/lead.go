package models

import (
	"time"

	"gorm.io/gorm"
)

type Lead struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:255" json:"title"`
	FirstName string `gorm:"size:255" json:"first_name"`
	LastName  string `gorm:"size:255" json:"last_name"`
	Email     string `gorm:"size:255" json:"email"`
	PhoneCode string `gorm:"size:10" json:"phone_code"`
	PhoneNo   string `gorm:"size:50" json:"phone_no"`

	// Account info captured at lead creation.
	CompanyName string `gorm:"size:255" json:"company_name"`
	Industry    string `gorm:"size:255" json:"industry"`
	CompanySize string `gorm:"size:50" json:"company_size"`
	Website     string `gorm:"size:255" json:"website"`

	EntryPoint string `gorm:"size:255" json:"entry_point"`
	Source     string `gorm:"size:255" json:"source"`
	Priority   string `gorm:"size:50" json:"priority"`
	Stage      string `gorm:"size:100" json:"stage"`
	Status     string `gorm:"size:50;default:'New'" json:"status"`
	Score      int    `json:"score"`

	OwnerID         *uint `gorm:"index" json:"owner_id"`
	AffiliateLinkID *uint `gorm:"index" json:"affiliate_link_id"`
	IsContact       bool  `gorm:"default:false" json:"is_contact"`

	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	LastContactAt *time.Time     `json:"last_contact_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Owner         *User          `gorm:"foreignKey:OwnerID" json:"-"`
	AffiliateLink *AffiliateLink `gorm:"foreignKey:AffiliateLinkID" json:"-"`
}

func (Lead) TableName() string { return "leads" }
