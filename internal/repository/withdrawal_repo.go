package repository

import (
	"vantage/internal/models"

	"gorm.io/gorm"
)

type WithdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) GetByID(id uint) (*models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByIDForUpdate loads the withdrawal row with a row-level lock. Status
// decisions must read through this so two concurrent decisions on the same
// withdrawal serialize before the transition check, not after it.
func (r *WithdrawalRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	if err := lockForUpdate(tx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByPersonID returns a person's withdrawal requests, newest first.
func (r *WithdrawalRepository) ListByPersonID(personID uint) ([]models.WithdrawalRequest, error) {
	var list []models.WithdrawalRequest
	err := r.db.Where("requested_by_id = ?", personID).
		Order("requested_at DESC").Find(&list).Error
	return list, err
}

// ListByStatus returns withdrawal requests filtered by status for the admin queue.
func (r *WithdrawalRepository) ListByStatus(status string, page, limit int) ([]models.WithdrawalRequest, int64, error) {
	q := r.db.Model(&models.WithdrawalRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	q.Count(&total)
	var list []models.WithdrawalRequest
	err := q.Order("requested_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}
