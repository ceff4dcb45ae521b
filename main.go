package main

import (
	"log"

	"github.com/fasthttp/router"
	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"f1predictor/internal/config"
	"f1predictor/internal/db"
	"f1predictor/internal/http/handlers"
	appmw "f1predictor/internal/http/middleware"
	"f1predictor/internal/openf1"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	sqlDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.EnsureBootstrapAdmin(sqlDB, cfg); err != nil {
		log.Fatalf("failed to ensure bootstrap admin: %v", err)
	}

	handlers.InitPrometheusMetrics()

	telemetry := openf1.New(cfg.OpenF1BaseURL)

	r := router.New()

	r.GET("/", func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"ok":true,"status":"F1 Predictor running"}`)
	})
	r.GET("/healthz", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	})

	r.POST("/register", handlers.Register(sqlDB))
	r.POST("/login", handlers.Login(sqlDB))

	r.POST("/predict", handlers.SubmitPrediction(sqlDB))
	r.GET("/predict", handlers.GetPrediction(sqlDB))

	r.GET("/results", handlers.GetResults(sqlDB))
	r.GET("/fetch-results", handlers.FetchResults(sqlDB, telemetry, cfg))

	r.GET("/leaderboard", handlers.Leaderboard(sqlDB))
	r.GET("/calendar", handlers.Calendar(cfg))

	r.GET("/metrics", handlers.PrometheusMetrics())

	// Global middleware chain: request logger, then CORS, then router.
	handler := handlers.RequestLogger(appmw.CORS(cfg)(r.Handler))

	log.Printf("f1predictor listening on %s", cfg.ListenAddr)
	if err := fasthttp.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
