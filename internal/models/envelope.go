package models

import "time"

// AnalysisResponse is the 200 body of POST /api/analyze-customer.
type AnalysisResponse struct {
	Success        bool                   `json:"success"`
	Analysis       CustomerAnalysisResult `json:"analysis"`
	Timestamp      string                 `json:"timestamp"`
	ProcessingTime string                 `json:"processing_time"`
	AIModel        string                 `json:"ai_model"`
	Confidence     float64                `json:"confidence"`
}

// BudgetResponse is the 200 body of POST /api/predict-budget. Optimization
// details stay internal to the plan and are not exposed here.
type BudgetResponse struct {
	Success         bool     `json:"success"`
	Budget          string   `json:"budget"`
	ROI             string   `json:"roi"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	Timestamp       string   `json:"timestamp"`
	ProcessingTime  string   `json:"processing_time"`
	AIModel         string   `json:"ai_model"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t as ISO-8601 UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
