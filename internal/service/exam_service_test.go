package service

import (
	"testing"

	"fe_exam_backend/internal/model"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSortByQuestionNumber(t *testing.T) {
	Convey("Given questions listed in external-id order", t, func() {
		questions := []model.Question{
			question(1, "2024_s_q10", "Technology"),
			question(2, "2024_s_q2", "Technology"),
			question(3, "2024_s_q1", "Management"),
		}

		Convey("Sorting orders them by numeric question number", func() {
			sortByQuestionNumber(questions)

			So(questions[0].ExternalID, ShouldEqual, "2024_s_q1")
			So(questions[1].ExternalID, ShouldEqual, "2024_s_q2")
			So(questions[2].ExternalID, ShouldEqual, "2024_s_q10")
		})

		Convey("Unparseable ids sink to the end", func() {
			questions = append(questions, question(4, "custom-import", "Strategy"))
			sortByQuestionNumber(questions)

			So(questions[3].ExternalID, ShouldEqual, "custom-import")
		})
	})
}

func TestChoiceMatches(t *testing.T) {
	Convey("Grading compares normalized choice letters", t, func() {
		So(choiceMatches("a", "a"), ShouldBeTrue)
		So(choiceMatches("A", "a"), ShouldBeTrue)
		So(choiceMatches(" b ", "b"), ShouldBeTrue)
		So(choiceMatches("b", "a"), ShouldBeFalse)
		So(choiceMatches("e", "e"), ShouldBeFalse)
		So(choiceMatches("", "a"), ShouldBeFalse)
	})
}
