package api

// Collaborator endpoint payloads.
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	Version     string  `json:"version"`
}

type TestResponse struct {
	Success     bool   `json:"success"`
	Response    string `json:"response"`
	Timestamp   string `json:"timestamp"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type Prediction struct {
	Type       string  `json:"type"`
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Timeframe  string  `json:"timeframe"`
}

type PredictionsResponse struct {
	Success     bool         `json:"success"`
	Predictions []Prediction `json:"predictions"`
	Timestamp   string       `json:"timestamp"`
}

type LiveMetrics struct {
	ActiveSessions  int     `json:"active_sessions"`
	TotalAnalyses   int     `json:"total_analyses"`
	SystemUptime    float64 `json:"system_uptime"`
	APICallsToday   int     `json:"api_calls_today"`
	AvgResponseTime string  `json:"avg_response_time"`
}

type MetricsResponse struct {
	Success   bool        `json:"success"`
	Metrics   LiveMetrics `json:"metrics"`
	Timestamp string      `json:"timestamp"`
}

type NotFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
	Timestamp          string   `json:"timestamp"`
}

type InternalErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

const (
	ServiceVersion = "2.0.0"
	HealthVersion  = ServiceVersion + "-railway"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// AvailableEndpoints is reported on every 404.
var AvailableEndpoints = []string{
	"GET /health",
	"GET /api/test",
	"POST /api/analyze-customer",
	"POST /api/predict-budget",
	"GET /api/quantum-predictions",
	"GET /api/real-time-metrics",
}

var quantumPredictions = []Prediction{
	{
		Type:       "market_trend",
		Prediction: "+127% crecimiento sector tech Q1 2025",
		Confidence: 94.7,
		Timeframe:  "90 days",
	},
	{
		Type:       "customer_behavior",
		Prediction: "Aumento 34% engagement móvil",
		Confidence: 89.2,
		Timeframe:  "60 days",
	},
	{
		Type:       "product_performance",
		Prediction: "Nuevo producto con 78% éxito",
		Confidence: 91.5,
		Timeframe:  "120 days",
	},
}
