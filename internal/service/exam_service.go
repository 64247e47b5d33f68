package service

import (
	"errors"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/internal/util"
	"fe_exam_backend/pkg/logger"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// FE morning session length.
	defaultExamTimeLimit = 150 * time.Minute
	// Submissions this far past the limit still grade, flagged as timed out.
	examSubmitGrace = 2 * time.Minute
)

// ExamService assembles timed mock exams from year/season question banks.
type ExamService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	ExamRepo     *repository.ExamRepository
	UserRepo     *repository.UserRepository
}

func NewExamService(
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	examRepo *repository.ExamRepository,
	userRepo *repository.UserRepository,
) *ExamService {
	return &ExamService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		ExamRepo:     examRepo,
		UserRepo:     userRepo,
	}
}

func (s *ExamService) Banks() ([]repository.BankInfo, error) {
	return s.QuestionRepo.Banks()
}

// ExamSession is a started mock exam: metadata plus the bank's questions in
// exam order, without answer keys.
type ExamSession struct {
	ResultID     uint             `json:"resultId"`
	Year         int              `json:"year"`
	Season       string           `json:"season"`
	TimeLimitSec int              `json:"timeLimitSec"`
	StartedAt    time.Time        `json:"startedAt"`
	Questions    []model.Question `json:"questions"`
}

// Start begins a timed sitting for the given bank.
func (s *ExamService) Start(userID uint, year int, season string) (*ExamSession, error) {
	normalized, ok := util.NormalizeSeason(season)
	if !ok {
		return nil, util.ErrBankNotFound
	}

	questions, err := s.QuestionRepo.ListByBank(year, normalized)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrBankEmpty
	}

	sortByQuestionNumber(questions)

	result := &model.ExamResult{
		UserID:       userID,
		Year:         year,
		Season:       normalized,
		Total:        len(questions),
		TimeLimitSec: int(defaultExamTimeLimit.Seconds()),
		StartedAt:    time.Now(),
	}
	if err := s.ExamRepo.Create(result); err != nil {
		return nil, err
	}

	return &ExamSession{
		ResultID:     result.ID,
		Year:         result.Year,
		Season:       result.Season,
		TimeLimitSec: result.TimeLimitSec,
		StartedAt:    result.StartedAt,
		Questions:    questions,
	}, nil
}

type ExamOutcome struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	TimedOut   bool    `json:"timedOut"`
}

// Submit grades a sitting. Every answered question is also recorded as an
// answer event so mock exams feed mastery and ranking the same way practice
// does. Submissions past the limit plus grace are graded but flagged.
func (s *ExamService) Submit(userID, resultID uint, answers map[uint]string) (*ExamOutcome, error) {
	result, err := s.ExamRepo.FindByIDAndUser(resultID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	if result.Finished() {
		return nil, util.ErrExamFinished
	}

	questions, err := s.QuestionRepo.ListByBank(result.Year, result.Season)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deadline := result.StartedAt.
		Add(time.Duration(result.TimeLimitSec) * time.Second).
		Add(examSubmitGrace)

	score := 0
	answered := 0
	for _, q := range questions {
		choice, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered++

		choice = strings.ToLower(strings.TrimSpace(choice))
		correct := choiceMatches(choice, q.Answer)
		if correct {
			score++
		}

		event := &model.AnswerEvent{
			UserID:         userID,
			QuestionID:     q.ID,
			IsCorrect:      correct,
			SelectedChoice: choice,
			AnsweredAt:     now,
		}
		if err := s.AnswerRepo.Create(event); err != nil {
			logger.Log.Error("exam answer event write failed",
				zap.Uint("userId", userID),
				zap.Uint("questionId", q.ID),
				zap.Error(err))
		}
	}

	result.Score = score
	result.Total = len(questions)
	result.TimedOut = now.After(deadline)
	result.FinishedAt = &now
	if err := s.ExamRepo.Update(result); err != nil {
		return nil, err
	}

	go s.refreshUserStats(userID, answered, score)

	outcome := &ExamOutcome{
		Score:    score,
		Total:    result.Total,
		TimedOut: result.TimedOut,
	}
	if result.Total > 0 {
		outcome.Percentage = util.Round2(float64(score) / float64(result.Total) * 100)
	}
	return outcome, nil
}

func (s *ExamService) Results(userID uint) ([]model.ExamResult, error) {
	return s.ExamRepo.ListByUser(userID)
}

func (s *ExamService) refreshUserStats(userID uint, answered, correct int) {
	if answered == 0 {
		return
	}
	if err := s.UserRepo.AddAnswerStats(userID, answered, correct); err != nil {
		logger.Log.Warn("user stats refresh failed",
			zap.Uint("userId", userID),
			zap.Error(err))
	}
}

// sortByQuestionNumber orders a bank by its parsed question number so q2
// precedes q10. Unparseable ids keep their relative position at the end.
func sortByQuestionNumber(questions []model.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		a, aok := util.ParseExamID(questions[i].ExternalID)
		b, bok := util.ParseExamID(questions[j].ExternalID)
		if aok && bok {
			return a.Number < b.Number
		}
		return aok && !bok
	})
}

func choiceMatches(choice, answer string) bool {
	choice = strings.ToLower(strings.TrimSpace(choice))
	return validChoice(choice) && choice == strings.ToLower(answer)
}
