package handlers_test

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/valyala/fasthttp"

	"f1predictor/internal/http/handlers"
)

// submit runs the SubmitPrediction handler against a raw body. The
// handler only touches the database after validation passes, so the
// rejection paths can run without one.
func submit(body string) (int, map[string]any) {
	h := handlers.SubmitPrediction(nil)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBodyString(body)
	h(ctx)

	var payload map[string]any
	_ = json.Unmarshal(ctx.Response.Body(), &payload)
	return ctx.Response.StatusCode(), payload
}

func TestSubmitPredictionValidation(t *testing.T) {
	Convey("Given the prediction endpoint", t, func() {
		valid := map[string]any{
			"username":    "alice",
			"round":       1,
			"pole":        "VER",
			"podium_p1":   "VER",
			"podium_p2":   "NOR",
			"podium_p3":   "LEC",
			"best_tr":     "Williams",
			"sc_count":    "1-2",
			"retirements": 2,
		}
		with := func(overrides map[string]any) string {
			m := make(map[string]any, len(valid))
			for k, v := range valid {
				m[k] = v
			}
			for k, v := range overrides {
				m[k] = v
			}
			b, _ := json.Marshal(m)
			return string(b)
		}

		Convey("When the body is not JSON", func() {
			code, payload := submit("{nope")
			So(code, ShouldEqual, fasthttp.StatusBadRequest)
			So(payload["ok"], ShouldBeFalse)
		})

		Convey("When the round is not on the calendar", func() {
			_, payload := submit(with(map[string]any{"round": 99}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "Unknown round.")
		})

		Convey("When a podium slot is empty", func() {
			_, payload := submit(with(map[string]any{"podium_p2": ""}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "Please select all three podium drivers.")
		})

		Convey("When two podium slots name the same driver", func() {
			_, payload := submit(with(map[string]any{"podium_p3": "VER"}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "P1, P2 and P3 must be different drivers.")
		})

		Convey("When a driver code is not on the roster", func() {
			_, payload := submit(with(map[string]any{"podium_p1": "ZZZ"}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "Unknown driver: ZZZ")
		})

		Convey("When the best-of-the-rest pick is a dominant team", func() {
			_, payload := submit(with(map[string]any{"best_tr": "Ferrari"}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "Best-of-the-Rest team must be outside the top four.")
		})

		Convey("When the safety-car bucket is not one of the labels", func() {
			_, payload := submit(with(map[string]any{"sc_count": "2"}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "Please select a safety car / red flag count.")
		})

		Convey("When the username is missing", func() {
			_, payload := submit(with(map[string]any{"username": ""}))
			So(payload["ok"], ShouldBeFalse)
			So(payload["error"], ShouldEqual, "All fields are required.")
		})
	})
}

func TestGetPredictionValidation(t *testing.T) {
	Convey("Given the prediction lookup endpoint", t, func() {
		Convey("When username or round is missing", func() {
			h := handlers.GetPrediction(nil)
			ctx := &fasthttp.RequestCtx{}
			ctx.Request.Header.SetMethod(fasthttp.MethodGet)
			ctx.Request.SetRequestURI("/predict?round=3")
			h(ctx)

			So(ctx.Response.StatusCode(), ShouldEqual, fasthttp.StatusBadRequest)
		})
	})
}
