package service

import (
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo   *repository.UserRepository
	AnswerRepo *repository.AnswerRepository
}

func NewUserService(userRepo *repository.UserRepository, answerRepo *repository.AnswerRepository) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		AnswerRepo: answerRepo,
	}
}

func (s *UserService) GetUsers(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.ListPaged(page, limit)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

type UserUpdateRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role" binding:"omitempty,oneof=student admin"`
	Disabled *bool  `json:"disabled"`
}

func (s *UserService) UpdateUser(id uint, req UserUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = model.UserRole(req.Role)
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	return s.UserRepo.Delete(id)
}

func (s *UserService) ResetPassword(id uint, newPassword string) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

// UserStats is the profile view of a user's answering record, counted from
// answer_events at request time.
type UserStats struct {
	TotalAnswered int64   `json:"totalAnswered"`
	TotalCorrect  int64   `json:"totalCorrect"`
	Accuracy      float64 `json:"accuracy"`
}

func (s *UserService) GetStats(userID uint) (*UserStats, error) {
	total, err := s.AnswerRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	correct, err := s.AnswerRepo.CountCorrectByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		TotalAnswered: total,
		TotalCorrect:  correct,
	}
	if total > 0 {
		stats.Accuracy = util.Round2(float64(correct) / float64(total) * 100)
	}
	return stats, nil
}
