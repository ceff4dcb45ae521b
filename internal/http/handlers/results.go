package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"f1predictor/internal/config"
	dbpkg "f1predictor/internal/db"
	"f1predictor/internal/ingest"
	"f1predictor/internal/openf1"
	"f1predictor/internal/scoring"
)

// GetResults returns the stored official result for a round, or null if
// it has not been fetched yet.
func GetResults(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		round := queryInt(ctx, "round")
		if round == 0 {
			jsonErr(ctx, fasthttp.StatusBadRequest, "round is required")
			return
		}

		res, err := dbpkg.GetResult(db, round)
		if err != nil {
			jsonErr(ctx, fasthttp.StatusInternalServerError, "database error")
			return
		}
		if res == nil {
			jsonOK(ctx, map[string]any{"results": nil})
			return
		}
		jsonOK(ctx, map[string]any{
			"results":      res,
			"possible_max": scoring.PossibleMax(*res),
		})
	}
}

// FetchResults pulls the round's telemetry from OpenF1, normalizes it
// and stores the result, replacing any earlier fetch. Synchronous: the
// caller waits for the upstream round trips.
func FetchResults(db *gorm.DB, client *openf1.Client, cfg *config.Config) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		round := queryInt(ctx, "round")
		if round == 0 {
			jsonErr(ctx, fasthttp.StatusBadRequest, "round is required")
			return
		}

		start := time.Now()
		res, err := ingest.FetchAndStore(db, client, cfg.SeasonYear, round)
		fetchDuration.Observe(time.Since(start).Seconds())

		roundLabel := strconv.Itoa(round)
		if err != nil {
			log.Printf("fetch-results round=%d failed: %v", round, err)
			switch {
			case errors.Is(err, ingest.ErrRoundNotFound):
				resultFetchesTotal.WithLabelValues(roundLabel, "round_not_found").Inc()
				jsonErr(ctx, fasthttp.StatusNotFound, err.Error())
			case errors.Is(err, ingest.ErrIncompleteSession):
				resultFetchesTotal.WithLabelValues(roundLabel, "incomplete_session").Inc()
				jsonErr(ctx, fasthttp.StatusConflict, "Race session not available yet for this round.")
			case errors.Is(err, openf1.ErrUpstreamUnavailable):
				resultFetchesTotal.WithLabelValues(roundLabel, "upstream_unavailable").Inc()
				jsonErr(ctx, fasthttp.StatusBadGateway, err.Error())
			default:
				resultFetchesTotal.WithLabelValues(roundLabel, "error").Inc()
				jsonErr(ctx, fasthttp.StatusInternalServerError, err.Error())
			}
			return
		}

		resultFetchesTotal.WithLabelValues(roundLabel, "ok").Inc()
		jsonOK(ctx, map[string]any{
			"result":       res,
			"possible_max": scoring.PossibleMax(*res),
		})
	}
}
