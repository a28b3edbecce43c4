package repository

import (
	"vantage/internal/models"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(p *models.Person) error {
	return r.db.Create(p).Error
}

func (r *PersonRepository) GetByID(id uint) (*models.Person, error) {
	var p models.Person
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) GetByUserID(userID uint) (*models.Person, error) {
	var p models.Person
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) List(page, limit int) ([]models.Person, int64, error) {
	var total int64
	r.db.Model(&models.Person{}).Count(&total)
	var persons []models.Person
	err := r.db.Preload("User").Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).Find(&persons).Error
	return persons, total, err
}
