package handlers

import (
	"github.com/valyala/fasthttp"

	"f1predictor/internal/config"
	"f1predictor/internal/season"
)

// Calendar returns the season's rounds so the frontend renders the
// schedule from the same table the backend scores against.
func Calendar(cfg *config.Config) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		jsonOK(ctx, map[string]any{
			"season": cfg.SeasonYear,
			"races":  season.Races,
		})
	}
}
