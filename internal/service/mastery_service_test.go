package service

import (
	"errors"
	"testing"

	"fe_exam_backend/internal/model"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMasteryClassify(t *testing.T) {
	Convey("Given a mastery classifier over recorded answer history", t, func() {
		answers := newFakeAnswerReader()
		svc := NewMasteryService(answers)

		Convey("A question never attempted classifies as bronze", func() {
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryBronze)
		})

		Convey("A single correct answer classifies as silver", func() {
			answers.record(10, true)
			So(svc.Classify(1, 10), ShouldEqual, model.MasterySilver)
		})

		Convey("Two consecutive correct answers classify as gold", func() {
			answers.record(10, true, true)
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryGold)
		})

		Convey("Three consecutive correct answers classify as gold", func() {
			answers.record(10, true, true, true)
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryGold)
		})

		Convey("An incorrect most recent answer classifies as bronze regardless of earlier streaks", func() {
			answers.record(10, true, true, false)
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryBronze)
		})

		Convey("A correct answer after a miss restarts the streak at silver", func() {
			answers.record(10, true, false, true)
			So(svc.Classify(1, 10), ShouldEqual, model.MasterySilver)
		})

		Convey("Only the three most recent events are considered", func() {
			// oldest incorrect falls outside the window
			answers.record(10, false, true, true, true)
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryGold)
		})

		Convey("A history lookup failure defaults to bronze", func() {
			answers.record(10, true, true)
			answers.historyErr = errors.New("db gone")
			So(svc.Classify(1, 10), ShouldEqual, model.MasteryBronze)
		})
	})
}
