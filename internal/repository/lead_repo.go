package repository

import (
	"errors"
	"fmt"
	"time"

	"vantage/internal/models"

	"gorm.io/gorm"
)

var ErrUnknownPatchField = errors.New("unknown patch field")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(l *models.Lead) error {
	return r.db.Create(l).Error
}

func (r *LeadRepository) GetByID(id uint) (*models.Lead, error) {
	var l models.Lead
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) List(status, source string, ownerID uint, page, limit int) ([]models.Lead, int64, error) {
	q := r.db.Model(&models.Lead{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if source != "" {
		q = q.Where("source = ?", source)
	}
	if ownerID != 0 {
		q = q.Where("owner_id = ?", ownerID)
	}
	var total int64
	q.Count(&total)
	var leads []models.Lead
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&leads).Error
	return leads, total, err
}

// leadPatchFields whitelists the columns a partial update may touch. Field
// names outside this set are rejected instead of silently applied.
var leadPatchFields = map[string]bool{
	"title": true, "first_name": true, "last_name": true, "email": true,
	"phone_code": true, "phone_no": true, "company_name": true, "industry": true,
	"company_size": true, "website": true, "entry_point": true, "source": true,
	"priority": true, "stage": true, "status": true, "score": true, "owner_id": true,
}

// Patch applies a whitelisted partial update and returns the refreshed lead.
func (r *LeadRepository) Patch(id uint, fields map[string]interface{}) (*models.Lead, error) {
	for k := range fields {
		if !leadPatchFields[k] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPatchField, k)
		}
	}
	fields["updated_at"] = time.Now().UTC()
	res := r.db.Model(&models.Lead{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// AttributeToLink sets the lead's affiliate link if none is recorded yet.
// First attribution wins; an existing link is never overwritten.
func (r *LeadRepository) AttributeToLink(leadID, linkID uint) error {
	return r.db.Model(&models.Lead{}).
		Where("id = ? AND affiliate_link_id IS NULL", leadID).
		Update("affiliate_link_id", linkID).Error
}

func (r *LeadRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Lead{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListTrashed returns soft-deleted leads for the trash view.
func (r *LeadRepository) ListTrashed(page, limit int) ([]models.Lead, int64, error) {
	q := r.db.Unscoped().Model(&models.Lead{}).Where("deleted_at IS NOT NULL")
	var total int64
	q.Count(&total)
	var leads []models.Lead
	err := q.Order("deleted_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&leads).Error
	return leads, total, err
}

func (r *LeadRepository) Restore(id uint) error {
	res := r.db.Unscoped().Model(&models.Lead{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
