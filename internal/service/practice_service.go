package service

import (
	"errors"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/internal/util"
	"fe_exam_backend/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PracticeService handles single-question answering and practice history.
type PracticeService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	UserRepo     *repository.UserRepository
	Mastery      *MasteryService
}

func NewPracticeService(
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	userRepo *repository.UserRepository,
	mastery *MasteryService,
) *PracticeService {
	return &PracticeService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		UserRepo:     userRepo,
		Mastery:      mastery,
	}
}

// AnswerOutcome is what the user sees right after answering: the verdict,
// the key, the explanation and the mastery label including this answer.
type AnswerOutcome struct {
	Correct       bool               `json:"correct"`
	CorrectChoice string             `json:"correctChoice"`
	Explanation   string             `json:"explanation"`
	Mastery       model.MasteryLevel `json:"mastery"`
}

// SubmitAnswer grades one choice against the stored key and records the
// answer event. The denormalized user counters are refreshed asynchronously;
// a refresh failure is logged and never fails the submission.
func (s *PracticeService) SubmitAnswer(userID, questionID uint, choice string) (*AnswerOutcome, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if !validChoice(choice) {
		return nil, util.ErrInvalidChoice
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	correct := strings.EqualFold(choice, question.Answer)

	event := &model.AnswerEvent{
		UserID:         userID,
		QuestionID:     question.ID,
		IsCorrect:      correct,
		SelectedChoice: choice,
		AnsweredAt:     time.Now(),
	}
	if err := s.AnswerRepo.Create(event); err != nil {
		return nil, err
	}

	go s.refreshUserStats(userID, correct)

	return &AnswerOutcome{
		Correct:       correct,
		CorrectChoice: question.Answer,
		Explanation:   question.Explanation,
		Mastery:       s.Mastery.Classify(userID, question.ID),
	}, nil
}

func (s *PracticeService) History(userID uint, page, limit int) ([]model.AnswerEvent, int64, error) {
	return s.AnswerRepo.ListByUser(userID, page, limit)
}

func (s *PracticeService) refreshUserStats(userID uint, correct bool) {
	if err := s.UserRepo.IncrementAnswerStats(userID, correct); err != nil {
		logger.Log.Warn("user stats refresh failed",
			zap.Uint("userId", userID),
			zap.Error(err))
	}
}

func validChoice(choice string) bool {
	switch choice {
	case "a", "b", "c", "d":
		return true
	}
	return false
}
