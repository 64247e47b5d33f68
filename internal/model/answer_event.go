package model

import (
	"time"
)

// AnswerEvent records one answer to one question. Events for a (user,
// question) pair are ordered by AnsweredAt; the mastery classifier and the
// ranking scorer only ever read these rows.
type AnswerEvent struct {
	BaseModel
	UserID         uint      `gorm:"index:idx_answer_events_user_question;not null" json:"userId"`
	QuestionID     uint      `gorm:"index:idx_answer_events_user_question;not null" json:"questionId"`
	Question       *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	IsCorrect      bool      `gorm:"not null" json:"isCorrect"`
	SelectedChoice string    `gorm:"size:1" json:"selectedChoice"`
	AnsweredAt     time.Time `gorm:"index;not null" json:"answeredAt"`
}

func (AnswerEvent) TableName() string {
	return "answer_events"
}
