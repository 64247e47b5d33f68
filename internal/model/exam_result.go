package model

import (
	"time"
)

// ExamResult is one mock-exam sitting assembled from a year/season bank.
type ExamResult struct {
	BaseModel
	UserID       uint       `gorm:"index;not null" json:"userId"`
	Year         int        `gorm:"not null" json:"year"`
	Season       string     `gorm:"size:10;not null" json:"season"`
	Score        int        `gorm:"default:0" json:"score"`
	Total        int        `gorm:"default:0" json:"total"`
	TimeLimitSec int        `gorm:"default:0" json:"timeLimitSec"`
	TimedOut     bool       `gorm:"default:false" json:"timedOut"`
	StartedAt    time.Time  `json:"startedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

func (r *ExamResult) Finished() bool {
	return r.FinishedAt != nil
}
