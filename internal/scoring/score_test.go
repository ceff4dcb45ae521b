package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"f1predictor/internal/db"
	"f1predictor/internal/scoring"
)

func TestScore(t *testing.T) {
	Convey("Given a prediction and an official result", t, func() {
		Convey("When every category matches exactly", func() {
			pred := db.Prediction{
				Pole: "VER", PodiumP1: "VER", PodiumP2: "NOR", PodiumP3: "LEC",
				SprintWin: "PIA", BestTR: "Williams", SCCount: "1-2", Retirements: 3,
			}
			res := db.Result{
				Pole: "VER", PodiumP1: "VER", PodiumP2: "NOR", PodiumP3: "LEC",
				SprintWin: "PIA", BestTR: "Williams", SCCount: "1-2", Retirements: 3,
			}
			b := scoring.Score(pred, res)

			Convey("Then every category pays its full value", func() {
				So(b.Pole, ShouldEqual, 10)
				So(b.PodiumP1, ShouldEqual, 25)
				So(b.PodiumP2, ShouldEqual, 18)
				So(b.PodiumP3, ShouldEqual, 15)
				So(b.Sprint, ShouldEqual, 8)
				So(b.BestTR, ShouldEqual, 10)
				So(b.SCCount, ShouldEqual, 10)
				So(b.Retirements, ShouldEqual, 10)
				So(b.Total, ShouldEqual, 106)
			})

			Convey("And the total equals the sum of the breakdown", func() {
				sum := 0
				for _, v := range b.Map() {
					sum += v
				}
				So(b.Total, ShouldEqual, sum)
			})

			Convey("And scoring is deterministic", func() {
				So(scoring.Score(pred, res), ShouldResemble, b)
			})
		})

		Convey("When podium picks land on the podium but in the wrong slot", func() {
			pred := db.Prediction{Pole: "VER", PodiumP1: "VER", PodiumP2: "LEC", PodiumP3: "HAM"}
			res := db.Result{Pole: "VER", PodiumP1: "LEC", PodiumP2: "VER", PodiumP3: "NOR"}
			b := scoring.Score(pred, res)

			Convey("Then each on-podium miss pays the flat consolation", func() {
				So(b.Pole, ShouldEqual, 10)
				So(b.PodiumP1, ShouldEqual, 10) // VER finished P2
				So(b.PodiumP2, ShouldEqual, 10) // LEC finished P1
				So(b.PodiumP3, ShouldEqual, 0)  // HAM off the podium
				So(b.Total, ShouldEqual, 30)
			})
		})

		Convey("When the same driver is guessed in two slots and finishes on the podium", func() {
			// Validation forbids duplicate picks, but scoring evaluates
			// each slot on its own and pays the consolation twice.
			pred := db.Prediction{PodiumP1: "VER", PodiumP2: "VER", PodiumP3: "NOR"}
			res := db.Result{PodiumP1: "LEC", PodiumP2: "NOR", PodiumP3: "VER"}
			b := scoring.Score(pred, res)

			So(b.PodiumP1, ShouldEqual, 10)
			So(b.PodiumP2, ShouldEqual, 10)
			So(b.PodiumP3, ShouldEqual, 10)
		})

		Convey("When an exact podium hit is possible", func() {
			pred := db.Prediction{PodiumP1: "VER"}
			res := db.Result{PodiumP1: "VER", PodiumP2: "VER"}

			Convey("Then the full slot value dominates the consolation", func() {
				So(scoring.Score(pred, res).PodiumP1, ShouldEqual, 25)
			})
		})

		Convey("When scoring retirements", func() {
			res := db.Result{Retirements: 4}

			Convey("Then an exact guess pays 10", func() {
				So(scoring.Score(db.Prediction{Retirements: 4}, res).Retirements, ShouldEqual, 10)
			})
			Convey("Then off by one pays 5 either side", func() {
				So(scoring.Score(db.Prediction{Retirements: 3}, res).Retirements, ShouldEqual, 5)
				So(scoring.Score(db.Prediction{Retirements: 5}, res).Retirements, ShouldEqual, 5)
			})
			Convey("Then off by two or more pays nothing", func() {
				So(scoring.Score(db.Prediction{Retirements: 2}, res).Retirements, ShouldEqual, 0)
				So(scoring.Score(db.Prediction{Retirements: 9}, res).Retirements, ShouldEqual, 0)
			})
		})

		Convey("When fields are missing on either side", func() {
			Convey("Then empty categories score zero instead of failing", func() {
				b := scoring.Score(db.Prediction{}, db.Result{})
				// Both retirement counts default to zero, which is an
				// exact numeric match.
				So(b.Total, ShouldEqual, 10)
				So(b.Retirements, ShouldEqual, 10)
				So(b.Pole, ShouldEqual, 0)
				So(b.PodiumP1, ShouldEqual, 0)
			})

			Convey("Then a predicted sprint winner without sprint data earns nothing", func() {
				pred := db.Prediction{SprintWin: "VER", Retirements: 5}
				res := db.Result{SprintWin: "", Retirements: 0}
				So(scoring.Score(pred, res).Sprint, ShouldEqual, 0)
			})

			Convey("Then a podium slot empty in the result scores zero", func() {
				pred := db.Prediction{PodiumP3: "HAM"}
				res := db.Result{PodiumP1: "HAM", Retirements: 9}
				So(scoring.Score(pred, res).PodiumP3, ShouldEqual, 0)
			})
		})
	})
}

func TestPossibleMax(t *testing.T) {
	Convey("Given per-round results", t, func() {
		Convey("When the round had a sprint, the ceiling includes it", func() {
			So(scoring.PossibleMax(db.Result{SprintWin: "VER"}), ShouldEqual, 96)
		})
		Convey("When the round had no sprint, the category is absent from the ceiling", func() {
			So(scoring.PossibleMax(db.Result{}), ShouldEqual, 88)
		})
	})
}
