package service

import (
	"os"
	"testing"
	"time"

	"fe_exam_backend/internal/model"
	"fe_exam_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type answerCounts struct {
	total   int64
	correct int64
	recent  int64
}

// fakeAnswerReader keeps per-question histories newest first and per-user
// aggregate counts, with injectable errors for the fail-open paths.
type fakeAnswerReader struct {
	history map[uint][]model.AnswerEvent // keyed by question id
	counts  map[uint]answerCounts        // keyed by user id

	historyErr error
	totalErr   error
	correctErr error
	recentErr  error
}

func newFakeAnswerReader() *fakeAnswerReader {
	return &fakeAnswerReader{
		history: map[uint][]model.AnswerEvent{},
		counts:  map[uint]answerCounts{},
	}
}

// record prepends so the slice stays newest first, matching the repository
// contract.
func (f *fakeAnswerReader) record(questionID uint, correct ...bool) {
	for _, c := range correct {
		f.history[questionID] = append([]model.AnswerEvent{{IsCorrect: c}}, f.history[questionID]...)
	}
}

func (f *fakeAnswerReader) RecentByUserAndQuestion(userID, questionID uint, limit int) ([]model.AnswerEvent, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	events := f.history[questionID]
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (f *fakeAnswerReader) CountByUser(userID uint) (int64, error) {
	if f.totalErr != nil {
		return 0, f.totalErr
	}
	return f.counts[userID].total, nil
}

func (f *fakeAnswerReader) CountCorrectByUser(userID uint) (int64, error) {
	if f.correctErr != nil {
		return 0, f.correctErr
	}
	return f.counts[userID].correct, nil
}

func (f *fakeAnswerReader) CountByUserSince(userID uint, since time.Time) (int64, error) {
	if f.recentErr != nil {
		return 0, f.recentErr
	}
	return f.counts[userID].recent, nil
}

type fakeQuestionCatalog struct {
	questions []model.Question
	err       error
}

func (f *fakeQuestionCatalog) ListOrdered() ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeUserCatalog struct {
	users []model.User
	err   error
}

func (f *fakeUserCatalog) ListAll(excludeAdmins bool) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.User
	for _, u := range f.users {
		if excludeAdmins && u.IsAdmin() {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
