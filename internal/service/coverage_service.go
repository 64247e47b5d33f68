package service

import (
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/util"
	"fe_exam_backend/pkg/logger"

	"go.uber.org/zap"
)

// CoverageService runs the mastery classifier across the whole exam bank and
// aggregates the result per year/season period.
type CoverageService struct {
	Questions QuestionCatalog
	Mastery   *MasteryService
}

func NewCoverageService(questions QuestionCatalog, mastery *MasteryService) *CoverageService {
	return &CoverageService{
		Questions: questions,
		Mastery:   mastery,
	}
}

type QuestionMastery struct {
	QuestionID string             `json:"questionId"`
	Genre      string             `json:"genre"`
	Level      model.MasteryLevel `json:"level"`
}

type CoverageSummary struct {
	Total      int     `json:"total"`
	Gold       int     `json:"gold"`
	Silver     int     `json:"silver"`
	Bronze     int     `json:"bronze"`
	GoldRate   float64 `json:"goldRate"`
	SilverRate float64 `json:"silverRate"`
	BronzeRate float64 `json:"bronzeRate"`
}

// CoverageReport maps period key -> question number -> mastery, plus the
// aggregate summary and the next-goal message derived from it.
type CoverageReport struct {
	Periods  map[string]map[int]QuestionMastery `json:"periods"`
	Summary  CoverageSummary                    `json:"summary"`
	NextGoal string                             `json:"nextGoal"`
}

// Coverage classifies every parseable question in the catalog for the user.
// Questions whose external id does not parse are silently skipped and do not
// count toward totals. A failed catalog read yields an empty report rather
// than an error, consistent with the classifier's bronze default.
func (s *CoverageService) Coverage(userID uint) *CoverageReport {
	report := &CoverageReport{
		Periods: map[string]map[int]QuestionMastery{},
	}

	questions, err := s.Questions.ListOrdered()
	if err != nil {
		logger.Log.Warn("question catalog read failed, returning empty coverage",
			zap.Uint("userId", userID),
			zap.Error(err))
		report.NextGoal = s.NextGoal(report.Summary)
		return report
	}

	for _, q := range questions {
		examID, ok := util.ParseExamID(q.ExternalID)
		if !ok {
			continue
		}

		level := s.Mastery.Classify(userID, q.ID)

		key := examID.PeriodKey()
		if report.Periods[key] == nil {
			report.Periods[key] = map[int]QuestionMastery{}
		}
		report.Periods[key][examID.Number] = QuestionMastery{
			QuestionID: q.ExternalID,
			Genre:      q.Genre,
			Level:      level,
		}

		report.Summary.Total++
		switch level {
		case model.MasteryGold:
			report.Summary.Gold++
		case model.MasterySilver:
			report.Summary.Silver++
		default:
			report.Summary.Bronze++
		}
	}

	if report.Summary.Total > 0 {
		total := float64(report.Summary.Total)
		report.Summary.GoldRate = util.Round2(float64(report.Summary.Gold) / total * 100)
		report.Summary.SilverRate = util.Round2(float64(report.Summary.Silver) / total * 100)
		report.Summary.BronzeRate = util.Round2(float64(report.Summary.Bronze) / total * 100)
	}

	report.NextGoal = s.NextGoal(report.Summary)
	return report
}

// NextGoal picks the study prompt for the current gold fraction. Bands are
// inclusive on their lower bound: exactly 50% gold prompts for 80%.
func (s *CoverageService) NextGoal(sum CoverageSummary) string {
	if sum.Total == 0 {
		return "Solve your first question"
	}
	if sum.Gold == 0 {
		return "Aim for your first gold"
	}

	goldPct := float64(sum.Gold) / float64(sum.Total) * 100
	switch {
	case goldPct < 50:
		return "Reach 50% gold"
	case goldPct < 80:
		return "Reach 80% gold"
	case goldPct < 100:
		return "Reach 100% gold"
	default:
		return "Maintain your mastery"
	}
}

// QuestionsByLevel returns the questions currently classified at the given
// level, preserving the catalog's external-id ordering. Levels outside the
// enum match nothing.
func (s *CoverageService) QuestionsByLevel(userID uint, level model.MasteryLevel) []model.Question {
	questions, err := s.Questions.ListOrdered()
	if err != nil {
		logger.Log.Warn("question catalog read failed, returning no questions",
			zap.Uint("userId", userID),
			zap.String("level", string(level)),
			zap.Error(err))
		return nil
	}

	var matched []model.Question
	for _, q := range questions {
		if _, ok := util.ParseExamID(q.ExternalID); !ok {
			continue
		}
		if s.Mastery.Classify(userID, q.ID) == level {
			matched = append(matched, q)
		}
	}
	return matched
}
