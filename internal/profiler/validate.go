package profiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/models"
)

// ErrNotObject is returned when a request body is valid JSON but not an object.
var ErrNotObject = errors.New("request body must be a JSON object")

// ParseCustomerProfile extracts the customer fields from body. Missing keys are
// left nil. Keys holding the wrong JSON type are dropped and reported in the
// returned anomaly list rather than rejected.
func ParseCustomerProfile(body []byte) (models.CustomerProfileInput, []string, error) {
	var input models.CustomerProfileInput

	obj, err := decodeObject(body)
	if err != nil {
		return input, nil, err
	}

	f := fields{obj: obj}
	// Only string ids are echoed back; numeric ids fall through to a GENERATED_ id.
	input.CustomerID = f.str("customer_id")
	input.Age = f.num("age")
	input.Income = f.num("income")
	input.Interests = f.strList("interests")
	input.PreviousPurchases = f.list("previous_purchases")
	input.OnlineBehavior = f.raw("online_behavior")
	input.Location = f.str("location")

	return input, f.anomalies, nil
}

// ParseCampaignBudget extracts the campaign fields from body, with the same
// tolerance rules as ParseCustomerProfile.
func ParseCampaignBudget(body []byte) (models.CampaignBudgetInput, []string, error) {
	var input models.CampaignBudgetInput

	obj, err := decodeObject(body)
	if err != nil {
		return input, nil, err
	}

	f := fields{obj: obj}
	input.CampaignDuration = f.num("campaign_duration")
	input.TargetAudience = f.raw("target_audience")
	input.ConversionRate = f.num("conversion_rate")
	input.CustomerLifetimeValue = f.num("customer_lifetime_value")
	input.MarketingObjective = f.str("marketing_objective")
	input.CompetitionLevel = f.str("competition_level")

	return input, f.anomalies, nil
}

// decodeObject treats an empty body as {}.
func decodeObject(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotObject, jsonKind(v))
	}
	return obj, nil
}

type fields struct {
	obj       map[string]any
	anomalies []string
}

func (f *fields) lookup(key string) (any, bool) {
	v, ok := f.obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (f *fields) mismatch(key, want string, got any) {
	f.anomalies = append(f.anomalies, fmt.Sprintf("%s: expected %s, got %s", key, want, jsonKind(got)))
}

func (f *fields) str(key string) *string {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.mismatch(key, "string", v)
		return nil
	}
	return &s
}

func (f *fields) num(key string) *float64 {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	n, ok := v.(float64)
	if !ok {
		f.mismatch(key, "number", v)
		return nil
	}
	return &n
}

func (f *fields) list(key string) []any {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		f.mismatch(key, "array", v)
		return nil
	}
	return l
}

func (f *fields) strList(key string) []string {
	items := f.list(key)
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			f.mismatch(fmt.Sprintf("%s[%d]", key, i), "string", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (f *fields) raw(key string) any {
	v, _ := f.lookup(key)
	return v
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
