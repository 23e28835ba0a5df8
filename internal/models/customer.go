package models

// CustomerProfileInput is the body of POST /api/analyze-customer.
// Every field is optional; nil means the key was absent or unusable.
type CustomerProfileInput struct {
	CustomerID        *string  `json:"customer_id,omitempty"`
	Age               *float64 `json:"age,omitempty"`
	Income            *float64 `json:"income,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	PreviousPurchases []any    `json:"previous_purchases,omitempty"`
	OnlineBehavior    any      `json:"online_behavior,omitempty"`
	Location          *string  `json:"location,omitempty"`
}

type CustomerProfile struct {
	CustomerID            string  `json:"customer_id"`
	Segment               string  `json:"segment"`
	LifetimeValue         float64 `json:"lifetime_value"`
	ConversionProbability int     `json:"conversion_probability"`
	RiskScore             int     `json:"risk_score"`
}

type CustomerMetrics struct {
	EngagementScore    int `json:"engagement_score"`
	PurchaseLikelihood int `json:"purchase_likelihood"`
	BrandAffinity      int `json:"brand_affinity"`
}

type CustomerAnalysisResult struct {
	Profile         CustomerProfile `json:"profile"`
	Insights        string          `json:"insights"`
	Recommendations []string        `json:"recommendations"`
	Metrics         CustomerMetrics `json:"metrics"`
}
