package repository

import (
	"fmt"
	"time"

	"vantage/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(category string, page, limit int) ([]models.Product, int64, error) {
	q := r.db.Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	q.Count(&total)
	var products []models.Product
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&products).Error
	return products, total, err
}

var productPatchFields = map[string]bool{
	"name": true, "category": true, "description": true, "price": true, "currency": true,
}

func (r *ProductRepository) Patch(id uint, fields map[string]interface{}) (*models.Product, error) {
	for k := range fields {
		if !productPatchFields[k] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPatchField, k)
		}
	}
	fields["updated_at"] = time.Now().UTC()
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *ProductRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
