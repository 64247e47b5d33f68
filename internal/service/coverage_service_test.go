package service

import (
	"errors"
	"testing"

	"fe_exam_backend/internal/model"

	. "github.com/smartystreets/goconvey/convey"
)

func question(id uint, externalID, genre string) model.Question {
	q := model.Question{ExternalID: externalID, Genre: genre}
	q.ID = id
	return q
}

func TestCoverage(t *testing.T) {
	Convey("Given a coverage aggregator over a small catalog", t, func() {
		answers := newFakeAnswerReader()
		catalog := &fakeQuestionCatalog{questions: []model.Question{
			question(1, "2023_a_q1", "Technology"),
			question(2, "2024_s_q1", "Technology"),
			question(3, "2024_s_q2", "Management"),
			question(4, "custom-import", "Strategy"),
		}}
		svc := NewCoverageService(catalog, NewMasteryService(answers))

		Convey("With no history every trackable question is bronze", func() {
			report := svc.Coverage(1)

			So(report.Summary.Total, ShouldEqual, 3)
			So(report.Summary.Bronze, ShouldEqual, 3)
			So(report.Summary.BronzeRate, ShouldEqual, 100.0)
			So(report.NextGoal, ShouldEqual, "Aim for your first gold")

			Convey("and the unparseable id is excluded from every period", func() {
				So(report.Periods, ShouldHaveLength, 2)
				So(report.Periods["2024_spring"], ShouldHaveLength, 2)
				So(report.Periods["2023_fall"], ShouldHaveLength, 1)
			})
		})

		Convey("With mixed history the periods carry per-question levels", func() {
			answers.record(1, true, true) // gold
			answers.record(2, true)       // silver

			report := svc.Coverage(1)

			So(report.Periods["2023_fall"][1].Level, ShouldEqual, model.MasteryGold)
			So(report.Periods["2024_spring"][1].Level, ShouldEqual, model.MasterySilver)
			So(report.Periods["2024_spring"][2].Level, ShouldEqual, model.MasteryBronze)

			So(report.Summary.Gold, ShouldEqual, 1)
			So(report.Summary.Silver, ShouldEqual, 1)
			So(report.Summary.Bronze, ShouldEqual, 1)
			So(report.Summary.GoldRate, ShouldEqual, 33.33)
			So(report.Summary.SilverRate, ShouldEqual, 33.33)
			So(report.Summary.BronzeRate, ShouldEqual, 33.33)
			So(report.NextGoal, ShouldEqual, "Reach 50% gold")
		})

		Convey("An empty catalog yields the first-question prompt", func() {
			catalog.questions = nil
			report := svc.Coverage(1)

			So(report.Summary.Total, ShouldEqual, 0)
			So(report.Periods, ShouldBeEmpty)
			So(report.NextGoal, ShouldEqual, "Solve your first question")
		})

		Convey("A catalog read failure yields an empty report, not an error", func() {
			catalog.err = errors.New("db gone")
			report := svc.Coverage(1)

			So(report.Summary.Total, ShouldEqual, 0)
			So(report.Periods, ShouldBeEmpty)
			So(report.NextGoal, ShouldEqual, "Solve your first question")
		})
	})
}

func TestNextGoalBands(t *testing.T) {
	Convey("Given the next-goal band thresholds", t, func() {
		svc := NewCoverageService(nil, nil)

		cases := []struct {
			name string
			sum  CoverageSummary
			want string
		}{
			{"no questions", CoverageSummary{}, "Solve your first question"},
			{"no gold yet", CoverageSummary{Total: 10}, "Aim for your first gold"},
			{"below half gold", CoverageSummary{Total: 10, Gold: 4}, "Reach 50% gold"},
			{"exactly half gold", CoverageSummary{Total: 10, Gold: 5}, "Reach 80% gold"},
			{"exactly 80% gold", CoverageSummary{Total: 10, Gold: 8}, "Reach 100% gold"},
			{"just under full", CoverageSummary{Total: 10, Gold: 9}, "Reach 100% gold"},
			{"full gold", CoverageSummary{Total: 10, Gold: 10}, "Maintain your mastery"},
		}

		for _, tc := range cases {
			Convey(tc.name, func() {
				So(svc.NextGoal(tc.sum), ShouldEqual, tc.want)
			})
		}
	})
}

func TestQuestionsByLevel(t *testing.T) {
	Convey("Given questions at different mastery levels", t, func() {
		answers := newFakeAnswerReader()
		answers.record(1, true, true)
		answers.record(2, true)
		catalog := &fakeQuestionCatalog{questions: []model.Question{
			question(1, "2024_s_q1", "Technology"),
			question(2, "2024_s_q2", "Management"),
			question(3, "2024_s_q3", "Strategy"),
		}}
		svc := NewCoverageService(catalog, NewMasteryService(answers))

		Convey("Each level selects only its own questions", func() {
			gold := svc.QuestionsByLevel(1, model.MasteryGold)
			So(gold, ShouldHaveLength, 1)
			So(gold[0].ExternalID, ShouldEqual, "2024_s_q1")

			silver := svc.QuestionsByLevel(1, model.MasterySilver)
			So(silver, ShouldHaveLength, 1)
			So(silver[0].ExternalID, ShouldEqual, "2024_s_q2")

			bronze := svc.QuestionsByLevel(1, model.MasteryBronze)
			So(bronze, ShouldHaveLength, 1)
			So(bronze[0].ExternalID, ShouldEqual, "2024_s_q3")
		})

		Convey("An unknown level matches nothing", func() {
			So(svc.QuestionsByLevel(1, model.MasteryLevel("platinum")), ShouldBeEmpty)
		})

		Convey("A catalog read failure returns no questions", func() {
			catalog.err = errors.New("db gone")
			So(svc.QuestionsByLevel(1, model.MasteryGold), ShouldBeEmpty)
		})
	})
}
