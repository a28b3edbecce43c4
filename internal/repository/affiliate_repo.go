package repository

import (
	"vantage/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AffiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) GetLinkByUserID(userID uint) (*models.AffiliateLink, error) {
	var l models.AffiliateLink
	if err := r.db.Where("affiliate_user_id = ?", userID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *AffiliateRepository) GetLinkByToken(token string) (*models.AffiliateLink, error) {
	var l models.AffiliateLink
	if err := r.db.Where("token = ?", token).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *AffiliateRepository) GetLinkByID(id uint) (*models.AffiliateLink, error) {
	var l models.AffiliateLink
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *AffiliateRepository) CreateLink(l *models.AffiliateLink) error {
	return r.db.Create(l).Error
}

func (r *AffiliateRepository) CreateClick(c *models.AffiliateClick) error {
	return r.db.Create(c).Error
}

func (r *AffiliateRepository) CountClicks(affiliateUserID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.AffiliateClick{}).
		Where("affiliate_user_id = ?", affiliateUserID).Count(&n).Error
	return n, err
}

// UpsertReferral creates the referral for (affiliate_user_id, shop_domain) or,
// when the row already exists, refreshes its last-click fields in place. The
// unique index uk_affiliate_shop makes this safe under concurrent first-clicks.
func (r *AffiliateRepository) UpsertReferral(ref *models.AffiliateReferral) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "affiliate_user_id"}, {Name: "shop_domain"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_click_id", "last_clicked_at", "updated_at",
		}),
	}).Create(ref).Error
}

func (r *AffiliateRepository) GetReferral(affiliateUserID uint, shopDomain string) (*models.AffiliateReferral, error) {
	var ref models.AffiliateReferral
	err := r.db.Where("affiliate_user_id = ? AND shop_domain = ?", affiliateUserID, shopDomain).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// LatestReferralByShop returns the most recently updated referral for a shop.
// Uniqueness across affiliates is not guaranteed, so last write wins.
func (r *AffiliateRepository) LatestReferralByShop(shopDomain string) (*models.AffiliateReferral, error) {
	var ref models.AffiliateReferral
	err := r.db.Where("shop_domain = ?", shopDomain).
		Order("updated_at DESC").First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *AffiliateRepository) SaveReferral(ref *models.AffiliateReferral) error {
	return r.db.Save(ref).Error
}

func (r *AffiliateRepository) GetInstall(affiliateLinkID, leadID uint) (*models.AffiliateInstall, error) {
	var in models.AffiliateInstall
	err := r.db.Where("affiliate_link_id = ? AND lead_id = ?", affiliateLinkID, leadID).
		First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *AffiliateRepository) LatestInstallByShop(shopDomain string) (*models.AffiliateInstall, error) {
	var in models.AffiliateInstall
	err := r.db.Where("shop_domain = ?", shopDomain).
		Order("installed_at DESC").First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *AffiliateRepository) CreateInstall(in *models.AffiliateInstall) error {
	return r.db.Create(in).Error
}

func (r *AffiliateRepository) SaveInstall(in *models.AffiliateInstall) error {
	return r.db.Save(in).Error
}
