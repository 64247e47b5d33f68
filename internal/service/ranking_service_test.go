package service

import (
	"errors"
	"testing"
	"time"

	"fe_exam_backend/internal/config"
	"fe_exam_backend/internal/model"

	. "github.com/smartystreets/goconvey/convey"
)

func user(id uint, name string, role model.UserRole) model.User {
	u := model.User{Name: name, Role: role}
	u.ID = id
	return u
}

func TestRankingScore(t *testing.T) {
	Convey("Given a ranking scorer with the default weights", t, func() {
		answers := newFakeAnswerReader()
		users := &fakeUserCatalog{}
		svc := NewRankingService(users, answers, config.DefaultRankingConfig())
		svc.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }

		Convey("A user with no answers scores zero everywhere", func() {
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 0.0)
			So(b.VolumeScore, ShouldEqual, 0.0)
			So(b.ActivityScore, ShouldEqual, 0.0)
			So(b.TotalScore, ShouldEqual, 0.0)
		})

		Convey("Half accuracy, half volume and half activity total fifty", func() {
			answers.counts[1] = answerCounts{total: 500, correct: 250, recent: 150}
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 50.0)
			So(b.VolumeScore, ShouldEqual, 50.0)
			So(b.ActivityScore, ShouldEqual, 50.0)
			So(b.TotalScore, ShouldEqual, 50.0)
		})

		Convey("Volume and activity cap at one hundred", func() {
			answers.counts[1] = answerCounts{total: 2500, correct: 2500, recent: 900}
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 100.0)
			So(b.VolumeScore, ShouldEqual, 100.0)
			So(b.ActivityScore, ShouldEqual, 100.0)
			So(b.TotalScore, ShouldEqual, 100.0)
		})

		Convey("Sub-scores round to two decimals", func() {
			answers.counts[1] = answerCounts{total: 3, correct: 1, recent: 1}
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 33.33)
			So(b.VolumeScore, ShouldEqual, 0.3)
			So(b.ActivityScore, ShouldEqual, 0.33)
		})

		Convey("A failed total count scores volume and accuracy as zero but not activity", func() {
			answers.counts[1] = answerCounts{total: 500, correct: 500, recent: 300}
			answers.totalErr = errors.New("db gone")
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 0.0)
			So(b.VolumeScore, ShouldEqual, 0.0)
			So(b.ActivityScore, ShouldEqual, 100.0)
		})

		Convey("A failed correct count scores accuracy as zero but keeps volume", func() {
			answers.counts[1] = answerCounts{total: 500, correct: 500, recent: 0}
			answers.correctErr = errors.New("db gone")
			b := svc.Score(1)
			So(b.AccuracyScore, ShouldEqual, 0.0)
			So(b.VolumeScore, ShouldEqual, 50.0)
		})

		Convey("A failed recent count scores activity as zero", func() {
			answers.counts[1] = answerCounts{total: 500, correct: 250, recent: 150}
			answers.recentErr = errors.New("db gone")
			b := svc.Score(1)
			So(b.ActivityScore, ShouldEqual, 0.0)
			So(b.AccuracyScore, ShouldEqual, 50.0)
		})

		Convey("Updated weights flow into the next score", func() {
			answers.counts[1] = answerCounts{total: 1000, correct: 1000, recent: 0}
			svc.UpdateConfig(config.RankingConfig{
				AccuracyWeight:     1.0,
				VolumeWeight:       0.0,
				ActivityWeight:     0.0,
				VolumeTarget:       1000,
				ActivityTarget:     300,
				ActivityWindowDays: 30,
			})
			b := svc.Score(1)
			So(b.TotalScore, ShouldEqual, 100.0)
		})
	})
}

func TestLeaderboard(t *testing.T) {
	Convey("Given a population of students and one admin", t, func() {
		answers := newFakeAnswerReader()
		// users 1 and 3 tie at 50.0, user 2 scores 96.0
		answers.counts[1] = answerCounts{total: 500, correct: 250, recent: 150}
		answers.counts[2] = answerCounts{total: 1000, correct: 900, recent: 300}
		answers.counts[3] = answerCounts{total: 500, correct: 250, recent: 150}
		answers.counts[9] = answerCounts{total: 1000, correct: 1000, recent: 300}

		users := &fakeUserCatalog{users: []model.User{
			user(1, "alice", model.Student),
			user(2, "bob", model.Student),
			user(3, "carol", model.Student),
			user(9, "root", model.Admin),
		}}
		svc := NewRankingService(users, answers, config.DefaultRankingConfig())
		svc.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }

		Convey("Entries sort by total score with ties broken by user id", func() {
			board := svc.Leaderboard(10, true)

			So(board, ShouldHaveLength, 3)
			So(board[0].UserID, ShouldEqual, 2)
			So(board[0].Rank, ShouldEqual, 1)
			So(board[0].TotalScore, ShouldEqual, 96.0)
			So(board[1].UserID, ShouldEqual, 1)
			So(board[1].Rank, ShouldEqual, 2)
			So(board[2].UserID, ShouldEqual, 3)
			So(board[2].Rank, ShouldEqual, 3)
		})

		Convey("Admins are excluded when requested and included otherwise", func() {
			So(svc.Leaderboard(10, true), ShouldHaveLength, 3)

			all := svc.Leaderboard(10, false)
			So(all, ShouldHaveLength, 4)
			So(all[0].UserID, ShouldEqual, 9)
		})

		Convey("The limit truncates after ranking", func() {
			board := svc.Leaderboard(1, true)
			So(board, ShouldHaveLength, 1)
			So(board[0].UserID, ShouldEqual, 2)
		})

		Convey("Rank reports the user's position", func() {
			rank, ok := svc.Rank(3, true)
			So(ok, ShouldBeTrue)
			So(rank, ShouldEqual, 3)
		})

		Convey("Rank reports absence for users outside the eligible set", func() {
			_, ok := svc.Rank(42, true)
			So(ok, ShouldBeFalse)

			_, ok = svc.Rank(9, true)
			So(ok, ShouldBeFalse)
		})

		Convey("A failed user listing yields an empty board", func() {
			users.err = errors.New("db gone")
			So(svc.Leaderboard(10, true), ShouldBeEmpty)
		})
	})
}
