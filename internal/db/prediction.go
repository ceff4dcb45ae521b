package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertPrediction stores p, replacing any existing prediction for the
// same (username, round). Last write wins; concurrent submissions by
// the same player resolve at the database, not in the application.
func UpsertPrediction(db *gorm.DB, p *Prediction) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}, {Name: "round"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pole", "podium_p1", "podium_p2", "podium_p3",
			"sprint_win", "best_tr", "sc_count", "retirements", "submitted_at",
		}),
	}).Create(p).Error
}

// GetPrediction returns the prediction for (username, round), or nil
// if none has been submitted.
func GetPrediction(db *gorm.DB, username string, round int) (*Prediction, error) {
	var p Prediction
	err := db.Where("username = ? AND round = ?", username, round).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPredictions returns every stored prediction, ordered by round then
// username so the leaderboard fold is deterministic.
func ListPredictions(db *gorm.DB) ([]Prediction, error) {
	var out []Prediction
	if err := db.Order("round, username").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
