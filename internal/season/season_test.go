package season_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"f1predictor/internal/season"
)

func TestCalendar(t *testing.T) {
	Convey("Given the 2026 calendar", t, func() {
		Convey("Then it has 24 rounds numbered consecutively", func() {
			So(season.Races, ShouldHaveLength, 24)
			for i, r := range season.Races {
				So(r.Round, ShouldEqual, i+1)
			}
		})

		Convey("Then the sprint weekends are rounds 2, 6, 7, 11, 14 and 18", func() {
			sprints := []int{}
			for _, r := range season.Races {
				if r.HasSprint {
					sprints = append(sprints, r.Round)
				}
			}
			So(sprints, ShouldResemble, []int{2, 6, 7, 11, 14, 18})
		})

		Convey("Then RaceByRound resolves valid rounds and rejects the rest", func() {
			race, ok := season.RaceByRound(8)
			So(ok, ShouldBeTrue)
			So(race.Name, ShouldEqual, "Monaco Grand Prix")

			_, ok = season.RaceByRound(0)
			So(ok, ShouldBeFalse)
			_, ok = season.RaceByRound(25)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRoster(t *testing.T) {
	Convey("Given the driver roster", t, func() {
		Convey("Then it carries a full grid of 22 drivers", func() {
			So(season.Drivers, ShouldHaveLength, 22)
		})

		Convey("Then ValidDriver matches acronyms exactly", func() {
			So(season.ValidDriver("VER"), ShouldBeTrue)
			So(season.ValidDriver("ver"), ShouldBeFalse)
			So(season.ValidDriver("XXX"), ShouldBeFalse)
		})

		Convey("Then ValidTeam knows every roster team", func() {
			So(season.ValidTeam("Williams"), ShouldBeTrue)
			So(season.ValidTeam("Cadillac"), ShouldBeTrue)
			So(season.ValidTeam("Minardi"), ShouldBeFalse)
		})
	})
}

func TestDominantTeams(t *testing.T) {
	Convey("Given the dominant-team matcher", t, func() {
		Convey("Then full OpenF1 team names match by substring", func() {
			So(season.IsDominantTeam("Oracle Red Bull Racing"), ShouldBeTrue)
			So(season.IsDominantTeam("Scuderia Ferrari HP"), ShouldBeTrue)
			So(season.IsDominantTeam("McLaren"), ShouldBeTrue)
			So(season.IsDominantTeam("Mercedes-AMG Petronas"), ShouldBeTrue)
		})

		Convey("Then midfield teams do not match", func() {
			So(season.IsDominantTeam("Williams"), ShouldBeFalse)
			So(season.IsDominantTeam("Racing Bulls"), ShouldBeFalse)
			So(season.IsDominantTeam("Aston Martin"), ShouldBeFalse)
		})
	})
}

func TestSCBuckets(t *testing.T) {
	Convey("Given the safety-car bucket quantizer", t, func() {
		Convey("Then raw counts land in the expected buckets", func() {
			So(season.BucketSCCount(0), ShouldEqual, "0")
			So(season.BucketSCCount(1), ShouldEqual, "1-2")
			So(season.BucketSCCount(2), ShouldEqual, "1-2")
			So(season.BucketSCCount(3), ShouldEqual, "3+")
			So(season.BucketSCCount(7), ShouldEqual, "3+")
		})

		Convey("Then only the bucket labels validate", func() {
			So(season.ValidSCBucket("0"), ShouldBeTrue)
			So(season.ValidSCBucket("1-2"), ShouldBeTrue)
			So(season.ValidSCBucket("3+"), ShouldBeTrue)
			So(season.ValidSCBucket("2"), ShouldBeFalse)
			So(season.ValidSCBucket(""), ShouldBeFalse)
		})
	})
}
