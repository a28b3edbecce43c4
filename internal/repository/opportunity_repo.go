package repository

import (
	"fmt"
	"time"

	"vantage/internal/models"

	"gorm.io/gorm"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(o *models.Opportunity) error {
	return r.db.Create(o).Error
}

func (r *OpportunityRepository) GetByID(id uint) (*models.Opportunity, error) {
	var o models.Opportunity
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OpportunityRepository) List(status, stage string, page, limit int) ([]models.Opportunity, int64, error) {
	q := r.db.Model(&models.Opportunity{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	var total int64
	q.Count(&total)
	var list []models.Opportunity
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

var opportunityPatchFields = map[string]bool{
	"name": true, "description": true, "stage": true, "status": true,
	"value": true, "currency": true, "lead_id": true, "person_id": true,
	"expected_close_at": true, "reason_lost": true,
}

func (r *OpportunityRepository) Patch(id uint, fields map[string]interface{}) (*models.Opportunity, error) {
	for k := range fields {
		if !opportunityPatchFields[k] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPatchField, k)
		}
	}
	fields["updated_at"] = time.Now().UTC()
	res := r.db.Model(&models.Opportunity{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *OpportunityRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Opportunity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
