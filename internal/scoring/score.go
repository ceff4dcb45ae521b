// Package scoring compares predictions against official results and
// allocates points per category. Scoring is pure and total: missing or
// malformed data on either side withholds points for that category, it
// never produces an error.
package scoring

import "f1predictor/internal/db"

// Points per category.
const (
	PolePoints       = 10
	SprintPoints     = 8
	BestTRPoints     = 10
	SCCountPoints    = 10
	RetirementsExact = 10
	RetirementsClose = 5
	PodiumWrongSlot  = 10
)

// PodiumSlotPoints are the full values for an exact hit at P1/P2/P3.
var PodiumSlotPoints = [3]int{25, 18, 15}

// Breakdown is the per-category outcome of scoring one prediction
// against one result. It is derived on demand and never persisted, so
// a changed rule set retroactively reshapes historical standings.
type Breakdown struct {
	Pole        int `json:"pole"`
	PodiumP1    int `json:"podium_p1"`
	PodiumP2    int `json:"podium_p2"`
	PodiumP3    int `json:"podium_p3"`
	Sprint      int `json:"sprint"`
	BestTR      int `json:"best_tr"`
	SCCount     int `json:"sc_count"`
	Retirements int `json:"retirements"`
	Total       int `json:"total"`
}

// Score evaluates every category independently and sums the points.
func Score(pred db.Prediction, res db.Result) Breakdown {
	var b Breakdown

	if pred.Pole != "" && res.Pole != "" && pred.Pole == res.Pole {
		b.Pole = PolePoints
	}

	predPodium := [3]string{pred.PodiumP1, pred.PodiumP2, pred.PodiumP3}
	resPodium := [3]string{res.PodiumP1, res.PodiumP2, res.PodiumP3}
	var podium [3]int
	for i := 0; i < 3; i++ {
		if predPodium[i] == "" || resPodium[i] == "" {
			continue
		}
		if predPodium[i] == resPodium[i] {
			podium[i] = PodiumSlotPoints[i]
		} else if onPodium(resPodium, predPodium[i]) {
			// Right driver, wrong slot. Evaluated per predicted slot,
			// not against a consumed set of podium members.
			podium[i] = PodiumWrongSlot
		}
	}
	b.PodiumP1, b.PodiumP2, b.PodiumP3 = podium[0], podium[1], podium[2]

	if pred.SprintWin != "" && res.SprintWin != "" && pred.SprintWin == res.SprintWin {
		b.Sprint = SprintPoints
	}
	if pred.BestTR != "" && res.BestTR != "" && pred.BestTR == res.BestTR {
		b.BestTR = BestTRPoints
	}
	if pred.SCCount != "" && res.SCCount != "" && pred.SCCount == res.SCCount {
		b.SCCount = SCCountPoints
	}

	switch diff := abs(pred.Retirements - res.Retirements); diff {
	case 0:
		b.Retirements = RetirementsExact
	case 1:
		b.Retirements = RetirementsClose
	}

	b.Total = b.Pole + b.PodiumP1 + b.PodiumP2 + b.PodiumP3 +
		b.Sprint + b.BestTR + b.SCCount + b.Retirements
	return b
}

// PossibleMax is the highest score the given result allows. The sprint
// category only counts for rounds whose result carries a sprint winner.
// Advisory for display; never persisted.
func PossibleMax(res db.Result) int {
	max := PolePoints + PodiumSlotPoints[0] + PodiumSlotPoints[1] + PodiumSlotPoints[2] +
		BestTRPoints + SCCountPoints + RetirementsExact
	if res.SprintWin != "" {
		max += SprintPoints
	}
	return max
}

// Map returns the per-category view keyed the way the API reports it.
func (b Breakdown) Map() map[string]int {
	return map[string]int{
		"pole":        b.Pole,
		"podium_p1":   b.PodiumP1,
		"podium_p2":   b.PodiumP2,
		"podium_p3":   b.PodiumP3,
		"sprint":      b.Sprint,
		"best_tr":     b.BestTR,
		"sc_count":    b.SCCount,
		"retirements": b.Retirements,
	}
}

func onPodium(podium [3]string, driver string) bool {
	return podium[0] == driver || podium[1] == driver || podium[2] == driver
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
