package scoring

import (
	"sort"

	"f1predictor/internal/db"
)

// LeaderboardRow is one player's standing across the season.
type LeaderboardRow struct {
	Username     string `json:"username"`
	TotalPoints  int    `json:"total_points"`
	RoundsPlayed int    `json:"rounds_played"`
}

// Aggregate folds every (prediction, result) pair into per-player
// totals. Only rounds with a stored result count; players with no
// scored round are omitted rather than shown at zero. Rows come back
// sorted by total descending, ties broken by username ascending.
func Aggregate(preds []db.Prediction, results []db.Result) []LeaderboardRow {
	byRound := make(map[int]db.Result, len(results))
	for _, r := range results {
		byRound[r.Round] = r
	}

	totals := make(map[string]*LeaderboardRow)
	for _, p := range preds {
		res, ok := byRound[p.Round]
		if !ok {
			continue
		}
		row := totals[p.Username]
		if row == nil {
			row = &LeaderboardRow{Username: p.Username}
			totals[p.Username] = row
		}
		row.TotalPoints += Score(p, res).Total
		row.RoundsPlayed++
	}

	rows := make([]LeaderboardRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].Username < rows[j].Username
	})
	return rows
}
