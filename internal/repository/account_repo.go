package repository

import (
	"fmt"
	"time"

	"vantage/internal/models"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(a *models.Account) error {
	return r.db.Create(a).Error
}

func (r *AccountRepository) GetByID(id uint) (*models.Account, error) {
	var a models.Account
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByShopDomain(shopDomain string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Where("shop_domain = ?", shopDomain).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) List(status, accountType string, page, limit int) ([]models.Account, int64, error) {
	q := r.db.Model(&models.Account{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if accountType != "" {
		q = q.Where("account_type = ?", accountType)
	}
	var total int64
	q.Count(&total)
	var accounts []models.Account
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&accounts).Error
	return accounts, total, err
}

var accountPatchFields = map[string]bool{
	"company_name": true, "industry": true, "company_size": true, "description": true,
	"annual_revenue": true, "location": true, "full_address": true, "email": true,
	"phone_code": true, "phone_no": true, "website": true, "account_type": true,
	"client_type": true, "status": true, "priority": true, "segment": true,
	"territory": true, "source": true, "owner_id": true, "shop_domain": true,
	"is_subsidiary": true, "parent_account_id": true,
}

func (r *AccountRepository) Patch(id uint, fields map[string]interface{}) (*models.Account, error) {
	for k := range fields {
		if !accountPatchFields[k] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPatchField, k)
		}
	}
	fields["updated_at"] = time.Now().UTC()
	res := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *AccountRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Account{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
