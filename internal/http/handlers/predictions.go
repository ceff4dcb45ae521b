package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	dbpkg "f1predictor/internal/db"
	"f1predictor/internal/season"
)

type predictionPayload struct {
	Username  string `json:"username"`
	Round     int    `json:"round"`
	Pole      string `json:"pole"`
	PodiumP1  string `json:"podium_p1"`
	PodiumP2  string `json:"podium_p2"`
	PodiumP3  string `json:"podium_p3"`
	SprintWin string `json:"sprint_win"`
	BestTR    string `json:"best_tr"`
	SCCount   string `json:"sc_count"`

	// Retirements arrives as a number from the form but older clients
	// sent strings; anything unparseable falls back to 0.
	Retirements any `json:"retirements"`
}

// SubmitPrediction validates and upserts one player's picks for a
// round. Lock enforcement (weekend underway, round not yet open) is the
// frontend's job; the API accepts any round on the calendar.
func SubmitPrediction(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		var p predictionPayload
		if err := json.Unmarshal(ctx.PostBody(), &p); err != nil {
			jsonErr(ctx, fasthttp.StatusBadRequest, "Invalid JSON.")
			return
		}

		if p.Username == "" {
			jsonErr(ctx, fasthttp.StatusOK, "All fields are required.")
			return
		}
		race, ok := season.RaceByRound(p.Round)
		if !ok {
			jsonErr(ctx, fasthttp.StatusOK, "Unknown round.")
			return
		}
		if p.PodiumP1 == "" || p.PodiumP2 == "" || p.PodiumP3 == "" {
			jsonErr(ctx, fasthttp.StatusOK, "Please select all three podium drivers.")
			return
		}
		if p.PodiumP1 == p.PodiumP2 || p.PodiumP1 == p.PodiumP3 || p.PodiumP2 == p.PodiumP3 {
			jsonErr(ctx, fasthttp.StatusOK, "P1, P2 and P3 must be different drivers.")
			return
		}
		for _, code := range []string{p.Pole, p.PodiumP1, p.PodiumP2, p.PodiumP3} {
			if code != "" && !season.ValidDriver(code) {
				jsonErr(ctx, fasthttp.StatusOK, "Unknown driver: "+code)
				return
			}
		}
		if p.BestTR == "" {
			jsonErr(ctx, fasthttp.StatusOK, "Please select a Best-of-the-Rest team.")
			return
		}
		if !season.ValidTeam(p.BestTR) || season.IsDominantTeam(p.BestTR) {
			jsonErr(ctx, fasthttp.StatusOK, "Best-of-the-Rest team must be outside the top four.")
			return
		}
		if !season.ValidSCBucket(p.SCCount) {
			jsonErr(ctx, fasthttp.StatusOK, "Please select a safety car / red flag count.")
			return
		}

		sprintWin := p.SprintWin
		if !race.HasSprint {
			sprintWin = ""
		} else if sprintWin != "" && !season.ValidDriver(sprintWin) {
			jsonErr(ctx, fasthttp.StatusOK, "Unknown driver: "+sprintWin)
			return
		}

		pred := &dbpkg.Prediction{
			Username:    p.Username,
			Round:       p.Round,
			Pole:        p.Pole,
			PodiumP1:    p.PodiumP1,
			PodiumP2:    p.PodiumP2,
			PodiumP3:    p.PodiumP3,
			SprintWin:   sprintWin,
			BestTR:      p.BestTR,
			SCCount:     p.SCCount,
			Retirements: coerceRetirements(p.Retirements),
			SubmittedAt: time.Now().UTC(),
		}
		if err := dbpkg.UpsertPrediction(db, pred); err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "failed to save prediction")
			return
		}

		predictionsSavedTotal.WithLabelValues(strconv.Itoa(p.Round)).Inc()
		jsonOK(ctx, map[string]any{"prediction": pred})
	}
}

// GetPrediction returns a player's stored picks for a round, or null.
func GetPrediction(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		username := string(ctx.QueryArgs().Peek("username"))
		round := queryInt(ctx, "round")
		if username == "" || round == 0 {
			jsonErr(ctx, fasthttp.StatusBadRequest, "username and round are required")
			return
		}

		pred, err := dbpkg.GetPrediction(db, username, round)
		if err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}
		jsonOK(ctx, map[string]any{"prediction": pred})
	}
}

// coerceRetirements accepts a JSON number or numeric string; anything
// else counts as 0 retirements.
func coerceRetirements(v any) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil && i > 0 {
			return i
		}
	}
	return 0
}
