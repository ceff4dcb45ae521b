package handlers

import (
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	dbpkg "f1predictor/internal/db"
	"f1predictor/internal/scoring"
)

// Leaderboard recomputes the season standings from every stored
// (prediction, result) pair. Nothing is cached: a re-fetched result
// changes the output immediately.
func Leaderboard(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		preds, err := dbpkg.ListPredictions(db)
		if err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}
		results, err := dbpkg.ListResults(db)
		if err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}

		jsonOK(ctx, map[string]any{"leaderboard": scoring.Aggregate(preds, results)})
	}
}
