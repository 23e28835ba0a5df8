package models

// CampaignBudgetInput is the body of POST /api/predict-budget. The fields are
// accepted and echoed into logs but do not influence the plan.
type CampaignBudgetInput struct {
	CampaignDuration      *float64 `json:"campaign_duration,omitempty"`
	TargetAudience        any      `json:"target_audience,omitempty"`
	ConversionRate        *float64 `json:"conversion_rate,omitempty"`
	CustomerLifetimeValue *float64 `json:"customer_lifetime_value,omitempty"`
	MarketingObjective    *string  `json:"marketing_objective,omitempty"`
	CompetitionLevel      *string  `json:"competition_level,omitempty"`
}

type OptimizationDetails struct {
	ChannelAllocation map[string]string `json:"channel_allocation"`
	Timeline          string            `json:"timeline"`
	ExpectedOutcome   string            `json:"expected_outcome"`
}

type BudgetPlanResult struct {
	Budget              string              `json:"budget"`
	ROI                 string              `json:"roi"`
	Confidence          int                 `json:"confidence"`
	Recommendations     []string            `json:"recommendations"`
	OptimizationDetails OptimizationDetails `json:"optimization_details"`
}
