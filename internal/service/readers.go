package service

import (
	"fe_exam_backend/internal/model"
	"time"
)

// The analytical services (mastery, coverage, ranking) read the answer and
// catalog stores through these narrow interfaces rather than the concrete
// repositories, so they can be exercised against in-memory fakes.

// AnswerReader reads raw answer events and aggregate counts.
type AnswerReader interface {
	// RecentByUserAndQuestion returns up to limit events newest first.
	RecentByUserAndQuestion(userID, questionID uint, limit int) ([]model.AnswerEvent, error)
	CountByUser(userID uint) (int64, error)
	CountCorrectByUser(userID uint) (int64, error)
	CountByUserSince(userID uint, since time.Time) (int64, error)
}

// QuestionCatalog reads the question bank in stable external-id order.
type QuestionCatalog interface {
	ListOrdered() ([]model.Question, error)
}

// UserCatalog lists ranking-eligible users in stable id order.
type UserCatalog interface {
	ListAll(excludeAdmins bool) ([]model.User, error)
}
