package service

import (
	"fe_exam_backend/internal/model"
	"fe_exam_backend/pkg/logger"

	"go.uber.org/zap"
)

// masteryWindow is how many recent events the classifier looks at. Older
// history never influences the label.
const masteryWindow = 3

// MasteryService turns a user's recent answer history for one question into
// a gold/silver/bronze label.
type MasteryService struct {
	Answers AnswerReader
}

func NewMasteryService(answers AnswerReader) *MasteryService {
	return &MasteryService{Answers: answers}
}

// Classify counts the run of consecutive correct answers starting at the
// most recent event within the window: 2 or more is gold, exactly 1 silver,
// otherwise bronze. No history classifies as bronze, and so does a failed
// lookup: a broken read must not break the coverage report it is part of.
func (s *MasteryService) Classify(userID, questionID uint) model.MasteryLevel {
	events, err := s.Answers.RecentByUserAndQuestion(userID, questionID, masteryWindow)
	if err != nil {
		logger.Log.Warn("answer history lookup failed, defaulting to bronze",
			zap.Uint("userId", userID),
			zap.Uint("questionId", questionID),
			zap.Error(err))
		return model.MasteryBronze
	}

	streak := 0
	for _, e := range events {
		if !e.IsCorrect {
			break
		}
		streak++
	}

	switch {
	case streak >= 2:
		return model.MasteryGold
	case streak == 1:
		return model.MasterySilver
	default:
		return model.MasteryBronze
	}
}
