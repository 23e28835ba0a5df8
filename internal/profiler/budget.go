package profiler

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
)

const (
	baseBudget      = 25000
	budgetVariation = 15000
	budgetDownside  = 5000
	planTimeline    = "30 days"
	outcomeTemplate = "%s ROI en 90 días"
)

var roiOptions = []string{"320%", "347%", "389%", "425%", "456%", "512%"}

var budgetRecommendations = []string{
	"Distribuir 45% del presupuesto en canales digitales",
	"Incrementar inversión en móviles en un 25%",
	"Implementar retargeting avanzado para segment C",
	"Explorar nuevas plataformas emergentes (TikTok, Threads)",
}

// ChannelAllocation is the fixed spend split, in percent.
var ChannelAllocation = []struct {
	Channel string
	Percent int
}{
	{"Digital Ads", 45},
	{"Social Media", 25},
	{"Influencers", 15},
	{"Content Marketing", 15},
}

// PredictBudget builds a budget plan after the simulated processing delay.
// The campaign input is accepted but does not influence the plan.
func (e *Engine) PredictBudget(ctx context.Context, _ models.CampaignBudgetInput) models.BudgetPlanResult {
	e.wait(ctx, BudgetLatency)

	amount := baseBudget + e.rand.IntN(budgetVariation) - budgetDownside
	roi := e.pick(roiOptions)

	allocation := make(map[string]string, len(ChannelAllocation))
	for _, c := range ChannelAllocation {
		allocation[c.Channel] = fmt.Sprintf("%d%%", c.Percent)
	}

	return models.BudgetPlanResult{
		Budget:          FormatEuros(amount),
		ROI:             roi,
		Confidence:      e.RandomIn(93, 5),
		Recommendations: append([]string(nil), budgetRecommendations...),
		OptimizationDetails: models.OptimizationDetails{
			ChannelAllocation: allocation,
			Timeline:          planTimeline,
			ExpectedOutcome:   fmt.Sprintf(outcomeTemplate, roi),
		},
	}
}
