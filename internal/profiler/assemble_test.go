package profiler

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
)

// panicRand simulates a failure inside an engine.
type panicRand struct{}

func (panicRand) IntN(int) int { panic("random source exhausted") }

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestAssembler_AnalyzeCustomer(t *testing.T) {
	engine, _ := newTestEngine(fixedRand{})
	assembler := NewAssembler(engine)

	status, resp := assembler.AnalyzeCustomer(context.Background(), []byte(`{"customer_id":"C1","income":50000}`))
	require.Equal(t, http.StatusOK, status)

	envelope, ok := resp.(models.AnalysisResponse)
	require.True(t, ok)
	assert.True(t, envelope.Success)
	assert.Equal(t, "C1", envelope.Analysis.Profile.CustomerID)
	assert.Equal(t, 7500.0, envelope.Analysis.Profile.LifetimeValue)
	assert.Equal(t, "1.2s", envelope.ProcessingTime)
	assert.Equal(t, "kimi-k2-quantum", envelope.AIModel)
	assert.Equal(t, 94.7, envelope.Confidence)
	assert.Equal(t, "2025-01-15T10:30:01.623Z", envelope.Timestamp)

	assert.Equal(t,
		[]string{"ai_model", "analysis", "confidence", "processing_time", "success", "timestamp"},
		keys(toMap(t, resp)),
	)
}

func TestAssembler_AnalyzeCustomer_EmptyBody(t *testing.T) {
	assembler := NewAssembler(NewEngine(Options{Rand: seeded(3), Clock: newFakeClock()}))

	status, resp := assembler.AnalyzeCustomer(context.Background(), []byte(`{}`))
	require.Equal(t, http.StatusOK, status)

	envelope := resp.(models.AnalysisResponse)
	assert.True(t, envelope.Success)
	assert.Regexp(t, regexp.MustCompile(`^GENERATED_\d+$`), envelope.Analysis.Profile.CustomerID)
	assert.Equal(t, 0.0, envelope.Analysis.Profile.LifetimeValue)
}

func TestAssembler_AnalyzeCustomer_NonObjectBody(t *testing.T) {
	engine, _ := newTestEngine(fixedRand{})
	assembler := NewAssembler(engine)

	status, resp := assembler.AnalyzeCustomer(context.Background(), []byte(`["not","an","object"]`))
	require.Equal(t, http.StatusInternalServerError, status)

	failure, ok := resp.(models.ErrorResponse)
	require.True(t, ok)
	assert.False(t, failure.Success)
	assert.Equal(t, "Error en el análisis de cliente", failure.Error)
	assert.Contains(t, failure.Details, "JSON object")
	assert.NotEmpty(t, failure.Timestamp)
}

func TestAssembler_AnalyzeCustomer_RecoversEnginePanic(t *testing.T) {
	assembler := NewAssembler(NewEngine(Options{Rand: panicRand{}, Clock: newFakeClock()}))

	status, resp := assembler.AnalyzeCustomer(context.Background(), []byte(`{}`))
	require.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, resp.(models.ErrorResponse).Details, "random source exhausted")
}

func TestAssembler_PredictBudget(t *testing.T) {
	engine, _ := newTestEngine(fixedRand{})
	assembler := NewAssembler(engine)

	status, resp := assembler.PredictBudget(context.Background(), []byte(`{"campaign_duration":30}`))
	require.Equal(t, http.StatusOK, status)

	envelope, ok := resp.(models.BudgetResponse)
	require.True(t, ok)
	assert.True(t, envelope.Success)
	assert.Equal(t, "€20,000", envelope.Budget)
	assert.Equal(t, "2.1s", envelope.ProcessingTime)
	assert.Equal(t, "quantum-optimization-v2", envelope.AIModel)
	assert.Len(t, envelope.Recommendations, 4)

	assert.Equal(t,
		[]string{"ai_model", "budget", "confidence", "processing_time", "recommendations", "roi", "success", "timestamp"},
		keys(toMap(t, resp)),
	)
}

func TestAssembler_PredictBudget_InvalidJSON(t *testing.T) {
	engine, _ := newTestEngine(fixedRand{})
	assembler := NewAssembler(engine)

	status, resp := assembler.PredictBudget(context.Background(), []byte(`{invalid`))
	require.Equal(t, http.StatusInternalServerError, status)

	failure := resp.(models.ErrorResponse)
	assert.Equal(t, "Error en la predicción de presupuesto", failure.Error)
	assert.Equal(t, []string{"details", "error", "success", "timestamp"}, keys(toMap(t, resp)))
}

func TestAssembler_ShapeIsStableAcrossCalls(t *testing.T) {
	assembler := NewAssembler(NewEngine(Options{Rand: seeded(11), Clock: newFakeClock()}))
	body := []byte(`{"customer_id":"C2","income":1000}`)

	_, first := assembler.AnalyzeCustomer(context.Background(), body)
	_, second := assembler.AnalyzeCustomer(context.Background(), body)

	a, b := toMap(t, first), toMap(t, second)
	assert.Equal(t, keys(a), keys(b))
	assert.Equal(t,
		keys(a["analysis"].(map[string]any)["profile"].(map[string]any)),
		keys(b["analysis"].(map[string]any)["profile"].(map[string]any)),
	)
}

func TestAssembler_AnalyzeCustomer_NumericIDIsReplaced(t *testing.T) {
	engine, _ := newTestEngine(fixedRand{})
	assembler := NewAssembler(engine)

	status, resp := assembler.AnalyzeCustomer(context.Background(), []byte(`{"customer_id":42,"income":1000}`))
	require.Equal(t, http.StatusOK, status)

	profile := resp.(models.AnalysisResponse).Analysis.Profile
	assert.Regexp(t, regexp.MustCompile(`^GENERATED_\d+$`), profile.CustomerID)
	assert.Equal(t, 150.0, profile.LifetimeValue)
}
