package repository

import (
	"fe_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(result *model.ExamResult) error {
	return r.DB.Create(result).Error
}

func (r *ExamRepository) Update(result *model.ExamResult) error {
	return r.DB.Save(result).Error
}

func (r *ExamRepository) FindByIDAndUser(id, userID uint) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&result).Error
	return &result, err
}

func (r *ExamRepository) ListByUser(userID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&results).Error
	return results, err
}
