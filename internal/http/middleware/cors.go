package middleware

import (
	"github.com/valyala/fasthttp"

	"f1predictor/internal/config"
)

// CORS echoes allowed origins and answers preflight requests. The
// frontend is served from a different origin (static hosting), so every
// browser call crosses origins.
func CORS(cfg *config.Config) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	allowAny := false
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAny = true
		}
		allowed[o] = true
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			origin := string(ctx.Request.Header.Peek("Origin"))
			switch {
			case allowAny && origin != "":
				ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			case allowed[origin]:
				ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			}
			ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")

			if string(ctx.Method()) == fasthttp.MethodOptions {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}

			next(ctx)
		}
	}
}
