package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateLink is the stable outbound tracking token for an affiliate user.
// Created lazily on first request; one per user.
type AffiliateLink struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	AffiliateUserID uint           `gorm:"uniqueIndex;not null" json:"affiliate_user_id"`
	Token           string         `gorm:"uniqueIndex;size:64;not null" json:"token"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	AffiliateUser User `gorm:"foreignKey:AffiliateUserID" json:"-"`
}

func (AffiliateLink) TableName() string { return "affiliate_links" }

// AffiliateClick is an immutable click event. Every redirect hit appends one;
// clicks are never deduplicated.
type AffiliateClick struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AffiliateUserID uint      `gorm:"not null;index" json:"affiliate_user_id"`
	ShopDomain      string    `gorm:"size:255;index" json:"shop_domain"` // empty if no shop known yet
	UTMSource       string    `gorm:"size:255" json:"utm_source"`
	CreatedAt       time.Time `json:"created_at"`

	AffiliateUser User `gorm:"foreignKey:AffiliateUserID" json:"-"`
}

func (AffiliateClick) TableName() string { return "affiliate_clicks" }

// AffiliateReferral is the latest attribution record for an (affiliate, shop)
// pair. The unique index makes concurrent first-clicks collapse into a single
// row via upsert instead of racing to create duplicates.
type AffiliateReferral struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	AffiliateUserID uint           `gorm:"not null;uniqueIndex:uk_affiliate_shop" json:"affiliate_user_id"`
	ShopDomain      string         `gorm:"size:255;not null;uniqueIndex:uk_affiliate_shop;index" json:"shop_domain"`
	LastClickID     *uint          `json:"last_click_id"`
	LastClickedAt   *time.Time     `json:"last_clicked_at"`
	Status          string         `gorm:"size:50;default:'pending'" json:"status"` // pending, installed, converted
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	AffiliateUser User            `gorm:"foreignKey:AffiliateUserID" json:"-"`
	LastClick     *AffiliateClick `gorm:"foreignKey:LastClickID" json:"-"`
}

func (AffiliateReferral) TableName() string { return "affiliate_referrals" }

// AffiliateInstall records that a referred lead activated the integration at
// a shop. At most one per (affiliate_link_id, lead_id); install webhooks may
// retry delivery, so creation is guarded by an idempotency lookup.
type AffiliateInstall struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	AffiliateUserID uint       `gorm:"index" json:"affiliate_user_id"`
	AffiliateLinkID uint       `gorm:"not null;index" json:"affiliate_link_id"`
	LeadID          uint       `gorm:"not null;index" json:"lead_id"`
	ShopDomain      string     `gorm:"size:255;index" json:"shop_domain"`
	ClientAccountID *uint      `gorm:"index" json:"client_account_id"`
	InstalledAt     time.Time  `json:"installed_at"`
	ConvertedAt     *time.Time `json:"converted_at"`

	AffiliateLink AffiliateLink `gorm:"foreignKey:AffiliateLinkID" json:"-"`
	Lead          Lead          `gorm:"foreignKey:LeadID" json:"-"`
}

func (AffiliateInstall) TableName() string { return "affiliate_installs" }
