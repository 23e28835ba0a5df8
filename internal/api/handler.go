package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
	"github.com/BerylCAtieno/marketing-decision-agent/internal/profiler"
)

const maxBodyBytes = 10 << 20

type Handler struct {
	engine      *profiler.Engine
	assembler   *profiler.Assembler
	environment string
	staticDir   string
	startedAt   time.Time
}

func NewHandler(engine *profiler.Engine, environment, staticDir string) *Handler {
	return &Handler{
		engine:      engine,
		assembler:   profiler.NewAssembler(engine),
		environment: environment,
		staticDir:   staticDir,
		startedAt:   engine.Now(),
	}
}

func (h *Handler) timestamp() string {
	return models.Timestamp(h.engine.Now())
}

func (h *Handler) uptime() float64 {
	return h.engine.Now().Sub(h.startedAt).Seconds()
}

// AnalyzeCustomer handles POST /api/analyze-customer.
func (h *Handler) AnalyzeCustomer(c *gin.Context) {
	zerolog.Ctx(c.Request.Context()).Info().Msg("customer analysis requested")

	body, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, h.assembler.AnalysisFailed(err))
		return
	}

	status, resp := h.assembler.AnalyzeCustomer(c.Request.Context(), body)
	c.JSON(status, resp)
}

// PredictBudget handles POST /api/predict-budget.
func (h *Handler) PredictBudget(c *gin.Context) {
	zerolog.Ctx(c.Request.Context()).Info().Msg("budget prediction requested")

	body, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, h.assembler.BudgetFailed(err))
		return
	}

	status, resp := h.assembler.PredictBudget(c.Request.Context(), body)
	c.JSON(status, resp)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   h.timestamp(),
		Uptime:      h.uptime(),
		Environment: h.environment,
		Version:     HealthVersion,
	})
}

func (h *Handler) Test(c *gin.Context) {
	zerolog.Ctx(c.Request.Context()).Info().Msg("test endpoint called")

	c.JSON(http.StatusOK, TestResponse{
		Success:     true,
		Response:    "conectado",
		Timestamp:   h.timestamp(),
		Message:     "API Kimi K2 operativa en servidor permanente",
		Environment: "Railway Production",
		Version:     ServiceVersion,
	})
}

func (h *Handler) QuantumPredictions(c *gin.Context) {
	c.JSON(http.StatusOK, PredictionsResponse{
		Success:     true,
		Predictions: quantumPredictions,
		Timestamp:   h.timestamp(),
	})
}

func (h *Handler) RealTimeMetrics(c *gin.Context) {
	// hundredths of a millisecond in [200.00, 700.00)
	avg := h.engine.RandomIn(20000, 50000)

	c.JSON(http.StatusOK, MetricsResponse{
		Success: true,
		Metrics: LiveMetrics{
			ActiveSessions:  h.engine.RandomIn(100, 50),
			TotalAnalyses:   h.engine.RandomIn(5000, 1000),
			SystemUptime:    h.uptime(),
			APICallsToday:   h.engine.RandomIn(1200, 500),
			AvgResponseTime: fmt.Sprintf("%d.%02dms", avg/100, avg%100),
		},
		Timestamp: h.timestamp(),
	})
}

// NotFound answers unmatched routes. In production, GET requests fall back to
// the static site before giving up.
func (h *Handler) NotFound(c *gin.Context) {
	if h.environment == EnvProduction && c.Request.Method == http.MethodGet {
		if file, ok := h.staticFile(c.Request.URL.Path); ok {
			c.File(file)
			return
		}
	}

	c.JSON(http.StatusNotFound, NotFoundResponse{
		Success:            false,
		Error:              "Endpoint not found",
		AvailableEndpoints: AvailableEndpoints,
		Timestamp:          h.timestamp(),
	})
}

func (h *Handler) staticFile(urlPath string) (string, bool) {
	if h.staticDir == "" {
		return "", false
	}

	candidates := []string{
		filepath.Join(h.staticDir, filepath.FromSlash(filepath.Clean("/"+urlPath))),
		filepath.Join(h.staticDir, "index.html"),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}
