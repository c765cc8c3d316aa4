package repositories

import (
	"gorm.io/gorm"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

type DiscussionRepository struct {
	DB *gorm.DB
}

func (r *DiscussionRepository) AddPost(post *models.DiscussionPost) error {
	return r.DB.Create(post).Error
}

// ListByProblem returns the thread for a problem in posting order.
func (r *DiscussionRepository) ListByProblem(problemID string) ([]models.DiscussionPost, error) {
	var posts []models.DiscussionPost
	err := r.DB.
		Where("problem_id = ?", problemID).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}
