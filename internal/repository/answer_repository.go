package repository

import (
	"fe_exam_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(event *model.AnswerEvent) error {
	if event.AnsweredAt.IsZero() {
		event.AnsweredAt = time.Now()
	}
	return r.DB.Create(event).Error
}

// RecentByUserAndQuestion returns at most limit events newest first.
// Identical timestamps fall back to insertion order via the id column.
func (r *AnswerRepository) RecentByUserAndQuestion(userID, questionID uint, limit int) ([]model.AnswerEvent, error) {
	var events []model.AnswerEvent
	err := r.DB.Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("answered_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *AnswerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *AnswerRepository) CountCorrectByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerEvent{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *AnswerRepository) CountByUserSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerEvent{}).
		Where("user_id = ? AND answered_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// ListByUser pages through a user's practice history, newest first.
func (r *AnswerRepository) ListByUser(userID uint, page, limit int) ([]model.AnswerEvent, int64, error) {
	var events []model.AnswerEvent
	var total int64

	base := r.DB.Model(&model.AnswerEvent{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Question").
		Where("user_id = ?", userID).
		Order("answered_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	return events, total, err
}
