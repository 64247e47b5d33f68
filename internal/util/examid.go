package util

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SeasonSpring = "spring"
	SeasonFall   = "fall"
)

// ExamID is the parsed form of an external question id such as "2024_s_q1":
// exam year, normalized season and question number within the bank.
type ExamID struct {
	Year   int
	Season string
	Number int
}

// PeriodKey identifies one year/season question bank, e.g. "2024_spring".
func (e ExamID) PeriodKey() string {
	return fmt.Sprintf("%d_%s", e.Year, e.Season)
}

// ParseExamID parses "{year}_{seasonCode}_q{num}". Season codes "s" and
// "spring" normalize to spring; "a", "autumn" and "fall" to fall. Returns
// false for anything else; callers treat such ids as outside the trackable
// exam bank.
func ParseExamID(id string) (ExamID, bool) {
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		return ExamID{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return ExamID{}, false
	}

	season, ok := NormalizeSeason(parts[1])
	if !ok {
		return ExamID{}, false
	}

	if !strings.HasPrefix(parts[2], "q") {
		return ExamID{}, false
	}
	num, err := strconv.Atoi(strings.TrimPrefix(parts[2], "q"))
	if err != nil || num <= 0 {
		return ExamID{}, false
	}

	return ExamID{Year: year, Season: season, Number: num}, true
}

// NormalizeSeason maps a season code or name to its canonical form.
func NormalizeSeason(code string) (string, bool) {
	switch strings.ToLower(code) {
	case "s", "spring":
		return SeasonSpring, true
	case "a", "autumn", "fall":
		return SeasonFall, true
	}
	return "", false
}
