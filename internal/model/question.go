package model

// Question is one multiple-choice question from an FE exam bank.
// ExternalID encodes the exam period and sequence number, e.g. "2024_s_q1";
// Year/Season are filled in at import time for bank queries. Questions whose
// external id does not parse keep Year == 0 and are excluded from coverage.
type Question struct {
	BaseModel
	ExternalID  string `gorm:"size:50;uniqueIndex;not null" json:"questionId"`
	Year        int    `gorm:"index:idx_questions_bank" json:"year"`
	Season      string `gorm:"size:10;index:idx_questions_bank" json:"season"`
	Genre       string `gorm:"size:100;index" json:"genre"`
	Text        string `gorm:"type:text;not null" json:"text"`
	ChoiceA     string `gorm:"type:text" json:"choiceA"`
	ChoiceB     string `gorm:"type:text" json:"choiceB"`
	ChoiceC     string `gorm:"type:text" json:"choiceC"`
	ChoiceD     string `gorm:"type:text" json:"choiceD"`
	Answer      string `gorm:"size:1;not null" json:"-"`
	Explanation string `gorm:"type:text" json:"-"`
	Image       string `gorm:"size:255" json:"image,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
