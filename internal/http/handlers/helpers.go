package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/valyala/fasthttp"
)

// RequestLogger returns fasthttp middleware that logs method, path, status, duration.
func RequestLogger(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		log.Printf("%s %s -> %d (%s) ip=%s", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start), ctx.RemoteAddr())
	}
}

// jsonOK writes {"ok":true, ...data} with status 200.
func jsonOK(ctx *fasthttp.RequestCtx, data map[string]any) {
	payload := map[string]any{"ok": true}
	for k, v := range data {
		payload[k] = v
	}
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// jsonErr writes {"ok":false,"error":msg} with the given status. The
// frontend only looks at the envelope, so validation errors ride on 200.
func jsonErr(ctx *fasthttp.RequestCtx, code int, msg string) {
	ctx.SetStatusCode(code)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(map[string]any{"ok": false, "error": msg})
	ctx.SetBody(body)
}

// queryInt reads an integer query parameter, 0 if absent or malformed.
func queryInt(ctx *fasthttp.RequestCtx, key string) int {
	n, _ := ctx.QueryArgs().GetUint(key)
	if n < 0 {
		return 0
	}
	return n
}
