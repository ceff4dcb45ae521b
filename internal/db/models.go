package db

import (
	"time"

	"gorm.io/datatypes"
)

// User is a registered player. Identity is intentionally minimal: the
// frontend keeps its own session and sends the username along with
// each prediction, so no tokens are issued here.
type User struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}

// Prediction is one player's picks for one round. At most one row per
// (username, round); re-submitting before the weekend locks replaces
// the previous row via upsert.
//
// Empty string fields mean "no pick" and score zero for that category.
type Prediction struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Username string `gorm:"uniqueIndex:idx_prediction_user_round,priority:1;size:64;not null" json:"username"`
	Round    int    `gorm:"uniqueIndex:idx_prediction_user_round,priority:2;not null" json:"round"`

	Pole     string `gorm:"size:8" json:"pole"`
	PodiumP1 string `gorm:"size:8" json:"podium_p1"`
	PodiumP2 string `gorm:"size:8" json:"podium_p2"`
	PodiumP3 string `gorm:"size:8" json:"podium_p3"`

	// SprintWin is only meaningful for sprint weekends; the handler
	// blanks it for rounds without a sprint.
	SprintWin string `gorm:"size:8" json:"sprint_win"`

	// BestTR is the predicted best-of-the-rest team (full team name,
	// never one of the dominant four).
	BestTR string `gorm:"column:best_tr;size:64" json:"best_tr"`

	// SCCount is a pre-quantized bucket label: "0", "1-2" or "3+".
	SCCount string `gorm:"column:sc_count;size:8" json:"sc_count"`

	Retirements int `json:"retirements"`

	// SubmittedAt is refreshed on every save.
	SubmittedAt time.Time `json:"submitted_at"`
}

// Result is the official outcome of one round, derived from OpenF1
// telemetry by the ingestion pipeline. At most one row per round;
// re-fetching replaces the row via upsert, so the leaderboard always
// reflects the latest fetch.
type Result struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Round int `gorm:"uniqueIndex;not null" json:"round"`

	Pole     string `gorm:"size:8" json:"pole"`
	PodiumP1 string `gorm:"size:8" json:"podium_p1"`
	PodiumP2 string `gorm:"size:8" json:"podium_p2"`
	PodiumP3 string `gorm:"size:8" json:"podium_p3"`

	// SprintWin is empty when the round had no sprint session, which
	// removes the sprint category from scoring entirely.
	SprintWin string `gorm:"size:8" json:"sprint_win"`

	BestTR  string `gorm:"column:best_tr;size:64" json:"best_tr"`
	SCCount string `gorm:"column:sc_count;size:8" json:"sc_count"`

	Retirements int `json:"retirements"`

	FetchedAt time.Time `json:"fetched_at"`

	// Meta carries provenance from the fetch (meeting key, session
	// keys, raw safety-car count, classified driver count) for
	// debugging upstream data quirks. Not used in scoring.
	Meta datatypes.JSONMap `gorm:"type:json" json:"meta,omitempty"`
}
