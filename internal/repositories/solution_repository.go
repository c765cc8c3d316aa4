package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

var ErrSolutionNotFound = errors.New("solution not found")

type SolutionRepository struct {
	DB *gorm.DB
}

func (r *SolutionRepository) Create(solution *models.Solution) error {
	return r.DB.Create(solution).Error
}

func (r *SolutionRepository) GetByID(id uint) (*models.Solution, error) {
	var solution models.Solution
	err := r.DB.Preload("Author").First(&solution, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSolutionNotFound
	}
	return &solution, err
}

// ListByProblem returns solutions for a problem, newest first.
func (r *SolutionRepository) ListByProblem(problemSlug string) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.DB.Preload("Author").
		Where("problem_slug = ?", problemSlug).
		Order("created_at DESC").
		Find(&solutions).Error
	return solutions, err
}

func (r *SolutionRepository) DeleteByID(id uint) error {
	result := r.DB.Delete(&models.Solution{}, id)
	if result.RowsAffected == 0 {
		return ErrSolutionNotFound
	}
	return result.Error
}

// Vote adjusts the vote counter and returns the new total.
func (r *SolutionRepository) Vote(id uint, delta int) (int, error) {
	var solution models.Solution
	if err := r.DB.First(&solution, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSolutionNotFound
		}
		return 0, err
	}

	solution.Votes += delta
	if err := r.DB.Model(&solution).Update("votes", solution.Votes).Error; err != nil {
		return 0, err
	}
	return solution.Votes, nil
}
