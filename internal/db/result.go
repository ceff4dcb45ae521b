package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertResult stores r, replacing any existing result for the same
// round in a single statement. Re-fetching a round therefore swaps the
// official result atomically; no historical snapshot is kept, so the
// leaderboard recomputes against the new data from then on.
func UpsertResult(db *gorm.DB, r *Result) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "round"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pole", "podium_p1", "podium_p2", "podium_p3",
			"sprint_win", "best_tr", "sc_count", "retirements",
			"fetched_at", "meta",
		}),
	}).Create(r).Error
}

// GetResult returns the official result for round, or nil if it has
// not been fetched yet.
func GetResult(db *gorm.DB, round int) (*Result, error) {
	var r Result
	err := db.Where("round = ?", round).First(&r).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListResults returns every stored result ordered by round.
func ListResults(db *gorm.DB) ([]Result, error) {
	var out []Result
	if err := db.Order("round").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
