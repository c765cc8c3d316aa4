package repositories

import (
	"gorm.io/gorm"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

type ScholarshipRepository struct {
	DB *gorm.DB
}

func (r *ScholarshipRepository) Create(s *models.Scholarship) error {
	return r.DB.Create(s).Error
}

// List returns the catalog, optionally filtered by region and category.
func (r *ScholarshipRepository) List(region, category string) ([]models.Scholarship, error) {
	q := r.DB.Model(&models.Scholarship{})
	if region != "" {
		q = q.Where("region = ?", region)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []models.Scholarship
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}
