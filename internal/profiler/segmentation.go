package profiler

import (
	"context"
	"fmt"
	"math"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
)

const (
	defaultSegment      = "Premium Tech Enthusiast"
	lifetimeValueFactor = 0.15
	generatedIDPrefix   = "GENERATED_"
)

var customerInsights = []string{
	"Cliente de alto potencial detectado. Sus intereses en tecnología y viajes indican una propensión alta a productos innovadores. Se recomienda enfocar campañas de productos tecnológicos y servicios de experiencia.",
	"Perfil de Early Adopter identificado. El cliente muestra comportamiento digital avanzado y está dispuesto a probar nuevos productos. Oportunidad de venta cruzada con productos premium.",
	"Segmento de poder adquisitivo medio-alto detectado. Enfoque en productos de calidad y marcas reconocidas. ROI estimado superior al promedio del sector.",
	"Cliente con alta actividad en redes sociales y comportamiento digital. Candidato ideal para marketing de influencers y campañas virales. Propensión a compartir contenido positivo.",
}

var customerRecommendations = []string{
	"Enfocar campañas en productos tecnológicos premium",
	"Utilizar estrategias de marketing de influencers",
	"Ofrecer productos de suscripción con descuentos",
	"Programar reengagement en 30 días",
}

// AnalyzeCustomer builds a segmentation analysis for input after the simulated
// processing delay. Only customer_id and income shape the result; everything
// else is sampled.
func (e *Engine) AnalyzeCustomer(ctx context.Context, input models.CustomerProfileInput) models.CustomerAnalysisResult {
	e.wait(ctx, AnalysisLatency)

	customerID := fmt.Sprintf("%s%d", generatedIDPrefix, e.clock.Now().UnixMilli())
	if input.CustomerID != nil && *input.CustomerID != "" {
		customerID = *input.CustomerID
	}

	// Missing income counts as zero.
	var income float64
	if input.Income != nil {
		income = *input.Income
	}

	profile := models.CustomerProfile{
		CustomerID:            customerID,
		Segment:               defaultSegment,
		LifetimeValue:         lifetimeValue(income),
		ConversionProbability: e.RandomIn(70, 30),
		RiskScore:             e.RandomIn(10, 20),
	}

	insights := e.pick(customerInsights)

	metrics := models.CustomerMetrics{
		EngagementScore:    e.RandomIn(80, 20),
		PurchaseLikelihood: e.RandomIn(85, 15),
		BrandAffinity:      e.RandomIn(75, 25),
	}

	return models.CustomerAnalysisResult{
		Profile:         profile,
		Insights:        insights,
		Recommendations: append([]string(nil), customerRecommendations...),
		Metrics:         metrics,
	}
}

// lifetimeValue stays a float so incomes beyond the int64 range keep their sign.
func lifetimeValue(income float64) float64 {
	v := math.Floor(income * lifetimeValueFactor)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
