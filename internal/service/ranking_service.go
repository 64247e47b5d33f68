package service

import (
	"fe_exam_backend/internal/config"
	"fe_exam_backend/internal/util"
	"fe_exam_backend/pkg/logger"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RankingService computes the composite leaderboard score: a weighted blend
// of lifetime accuracy, answer volume and recent activity. The weights and
// normalization targets come from config and can be swapped at runtime via
// the config watcher.
type RankingService struct {
	Users   UserCatalog
	Answers AnswerReader

	mu  sync.RWMutex
	cfg config.RankingConfig

	// now is swapped in tests to pin the activity window.
	now func() time.Time
}

func NewRankingService(users UserCatalog, answers AnswerReader, cfg config.RankingConfig) *RankingService {
	return &RankingService{
		Users:   users,
		Answers: answers,
		cfg:     cfg,
		now:     time.Now,
	}
}

// UpdateConfig replaces the scoring parameters, typically after a config
// file reload.
func (s *RankingService) UpdateConfig(cfg config.RankingConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	logger.Log.Info("ranking config updated",
		zap.Float64("accuracyWeight", cfg.AccuracyWeight),
		zap.Float64("volumeWeight", cfg.VolumeWeight),
		zap.Float64("activityWeight", cfg.ActivityWeight))
}

func (s *RankingService) config() config.RankingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// ScoreBreakdown is one user's sub-scores and weighted total, each in
// [0, 100] and rounded to two decimals.
type ScoreBreakdown struct {
	AccuracyScore float64 `json:"accuracyScore"`
	VolumeScore   float64 `json:"volumeScore"`
	ActivityScore float64 `json:"activityScore"`
	TotalScore    float64 `json:"totalScore"`
}

type RankingEntry struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Rank     int    `json:"rank"`
	ScoreBreakdown
}

// Score computes the three sub-scores for one user. Each sub-score fails
// open to 0.0 on a storage error so a single bad read cannot sink the whole
// leaderboard.
func (s *RankingService) Score(userID uint) ScoreBreakdown {
	cfg := s.config()

	var breakdown ScoreBreakdown

	total, err := s.Answers.CountByUser(userID)
	if err != nil {
		logger.Log.Warn("answer count failed, scoring volume as 0",
			zap.Uint("userId", userID), zap.Error(err))
		total = 0
	} else if total > 0 {
		correct, err := s.Answers.CountCorrectByUser(userID)
		if err != nil {
			logger.Log.Warn("correct count failed, scoring accuracy as 0",
				zap.Uint("userId", userID), zap.Error(err))
		} else {
			breakdown.AccuracyScore = util.Round2(float64(correct) / float64(total) * 100)
		}
		breakdown.VolumeScore = util.Round2(clip100(float64(total) / float64(cfg.VolumeTarget) * 100))
	}

	cutoff := s.now().AddDate(0, 0, -cfg.ActivityWindowDays)
	recent, err := s.Answers.CountByUserSince(userID, cutoff)
	if err != nil {
		logger.Log.Warn("recent count failed, scoring activity as 0",
			zap.Uint("userId", userID), zap.Error(err))
	} else {
		breakdown.ActivityScore = util.Round2(clip100(float64(recent) / float64(cfg.ActivityTarget) * 100))
	}

	breakdown.TotalScore = util.Round2(
		breakdown.AccuracyScore*cfg.AccuracyWeight +
			breakdown.VolumeScore*cfg.VolumeWeight +
			breakdown.ActivityScore*cfg.ActivityWeight)

	return breakdown
}

// Leaderboard scores every eligible user, sorts by total score descending
// (ties broken by user id ascending, so positions are deterministic) and
// keeps the top limit entries with ranks 1..N. A failed user listing yields
// an empty board.
func (s *RankingService) Leaderboard(limit int, excludeAdmins bool) []RankingEntry {
	entries := s.scoreAll(excludeAdmins)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Rank returns the user's 1-based leaderboard position, or false when the
// user is not in the eligible set.
func (s *RankingService) Rank(userID uint, excludeAdmins bool) (int, bool) {
	for _, e := range s.scoreAll(excludeAdmins) {
		if e.UserID == userID {
			return e.Rank, true
		}
	}
	return 0, false
}

func (s *RankingService) scoreAll(excludeAdmins bool) []RankingEntry {
	users, err := s.Users.ListAll(excludeAdmins)
	if err != nil {
		logger.Log.Warn("user listing failed, returning empty leaderboard", zap.Error(err))
		return nil
	}

	entries := make([]RankingEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, RankingEntry{
			UserID:         u.ID,
			Username:       u.Name,
			ScoreBreakdown: s.Score(u.ID),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func clip100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
