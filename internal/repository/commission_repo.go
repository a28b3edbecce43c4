package repository

import (
	"vantage/internal/models"

	"gorm.io/gorm"
)

type CommissionRepository struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

func (r *CommissionRepository) Create(c *models.CommissionRecord) error {
	return r.db.Create(c).Error
}

func (r *CommissionRepository) GetByID(id uint) (*models.CommissionRecord, error) {
	var c models.CommissionRecord
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByIDForUpdate loads the record with a row-level lock so the pending
// check and the paid/canceled write commit as one step.
func (r *CommissionRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.CommissionRecord, error) {
	var c models.CommissionRecord
	if err := lockForUpdate(tx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommissionRepository) ListBySalesperson(personID uint) ([]models.CommissionRecord, error) {
	var list []models.CommissionRecord
	err := r.db.Where("salesperson_id = ?", personID).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *CommissionRepository) ListByStatus(status string, page, limit int) ([]models.CommissionRecord, int64, error) {
	q := r.db.Model(&models.CommissionRecord{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	q.Count(&total)
	var list []models.CommissionRecord
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}
