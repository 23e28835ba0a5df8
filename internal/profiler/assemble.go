package profiler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
)

const (
	AnalysisModel          = "kimi-k2-quantum"
	AnalysisProcessingTime = "1.2s"
	AnalysisConfidence     = 94.7

	BudgetModel          = "quantum-optimization-v2"
	BudgetProcessingTime = "2.1s"

	analysisErrorMessage = "Error en el análisis de cliente"
	budgetErrorMessage   = "Error en la predicción de presupuesto"
)

// Assembler turns a raw request body into a status code and a response
// envelope. It is the only place where core failures become HTTP 500.
type Assembler struct {
	engine *Engine
}

func NewAssembler(engine *Engine) *Assembler {
	return &Assembler{engine: engine}
}

func (a *Assembler) AnalyzeCustomer(ctx context.Context, body []byte) (int, any) {
	logger := zerolog.Ctx(ctx)

	var result models.CustomerAnalysisResult
	err := guard(func() error {
		input, anomalies, err := ParseCustomerProfile(body)
		if err != nil {
			return err
		}
		warnAnomalies(logger, anomalies)

		result = a.engine.AnalyzeCustomer(ctx, input)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("customer analysis failed")
		return http.StatusInternalServerError, a.AnalysisFailed(err)
	}

	logger.Info().
		Str("customer_id", result.Profile.CustomerID).
		Int("conversion_probability", result.Profile.ConversionProbability).
		Msg("customer analysis completed")

	return http.StatusOK, models.AnalysisResponse{
		Success:        true,
		Analysis:       result,
		Timestamp:      models.Timestamp(a.engine.Now()),
		ProcessingTime: AnalysisProcessingTime,
		AIModel:        AnalysisModel,
		Confidence:     AnalysisConfidence,
	}
}

func (a *Assembler) PredictBudget(ctx context.Context, body []byte) (int, any) {
	logger := zerolog.Ctx(ctx)

	var plan models.BudgetPlanResult
	err := guard(func() error {
		input, anomalies, err := ParseCampaignBudget(body)
		if err != nil {
			return err
		}
		warnAnomalies(logger, anomalies)

		plan = a.engine.PredictBudget(ctx, input)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("budget prediction failed")
		return http.StatusInternalServerError, a.BudgetFailed(err)
	}

	logger.Info().
		Str("budget", plan.Budget).
		Str("roi", plan.ROI).
		Msg("budget prediction completed")

	return http.StatusOK, models.BudgetResponse{
		Success:         true,
		Budget:          plan.Budget,
		ROI:             plan.ROI,
		Confidence:      plan.Confidence,
		Recommendations: plan.Recommendations,
		Timestamp:       models.Timestamp(a.engine.Now()),
		ProcessingTime:  BudgetProcessingTime,
		AIModel:         BudgetModel,
	}
}

// AnalysisFailed is the 500 body for a failed customer analysis.
func (a *Assembler) AnalysisFailed(err error) models.ErrorResponse {
	return a.failure(analysisErrorMessage, err)
}

// BudgetFailed is the 500 body for a failed budget prediction.
func (a *Assembler) BudgetFailed(err error) models.ErrorResponse {
	return a.failure(budgetErrorMessage, err)
}

// details carries the raw error text to the caller.
func (a *Assembler) failure(message string, err error) models.ErrorResponse {
	return models.ErrorResponse{
		Success:   false,
		Error:     message,
		Details:   err.Error(),
		Timestamp: models.Timestamp(a.engine.Now()),
	}
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func warnAnomalies(logger *zerolog.Logger, anomalies []string) {
	if len(anomalies) == 0 {
		return
	}
	logger.Warn().Strs("anomalies", anomalies).Msg("request fields ignored")
}
