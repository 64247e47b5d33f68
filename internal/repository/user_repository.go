package repository

import (
	"fe_exam_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

// ListAll returns every enabled user ordered by id, the stable listing the
// ranking scorer positions users in.
func (r *UserRepository) ListAll(excludeAdmins bool) ([]model.User, error) {
	var users []model.User
	q := r.DB.Where("disabled = ?", false).Order("id ASC")
	if excludeAdmins {
		q = q.Where("role <> ?", model.Admin)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) ListPaged(page, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	if err := r.DB.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

// IncrementAnswerStats bumps the denormalized per-user counters after a
// single answer is recorded.
func (r *UserRepository) IncrementAnswerStats(userID uint, correct bool) error {
	answered, correctDelta := 1, 0
	if correct {
		correctDelta = 1
	}
	return r.AddAnswerStats(userID, answered, correctDelta)
}

// AddAnswerStats adds a batch of answers to the denormalized counters, e.g.
// after a mock-exam submission.
func (r *UserRepository) AddAnswerStats(userID uint, answered, correct int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_answered": gorm.Expr("total_answered + ?", answered),
			"total_correct":  gorm.Expr("total_correct + ?", correct),
		}).
		Error
}
