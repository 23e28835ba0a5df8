package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/profiler"
)

type RouterConfig struct {
	Environment    string
	AllowedOrigins []string
	StaticDir      string
	Logger         zerolog.Logger
}

func NewRouter(cfg RouterConfig, engine *profiler.Engine) (*gin.Engine, error) {
	corsMiddleware, err := CORS(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(engine, cfg.Environment, cfg.StaticDir)

	router := gin.New()
	router.Use(
		RequestLogger(cfg.Logger),
		Recovery(cfg.Environment, engine.Now),
		corsMiddleware,
	)

	// Endpoints
	router.GET("/health", handler.Health)
	router.GET("/api/test", handler.Test)
	router.POST("/api/analyze-customer", handler.AnalyzeCustomer)
	router.POST("/api/predict-budget", handler.PredictBudget)
	router.GET("/api/quantum-predictions", handler.QuantumPredictions)
	router.GET("/api/real-time-metrics", handler.RealTimeMetrics)

	router.NoRoute(handler.NotFound)

	return router, nil
}
