package domain

import "fmt"

// OperationKind identifies a billable oracle operation for cost
// estimation and budget checks.
type OperationKind string

const (
	// OpExpansion is a seed-expansion lookup.
	OpExpansion OperationKind = "expansion"
	// OpMetrics is a keyword-metrics lookup.
	OpMetrics OperationKind = "metrics"
	// OpSERP is a SERP lookup.
	OpSERP OperationKind = "serp"
	// OpSuggestions is a keyword-suggestions lookup.
	OpSuggestions OperationKind = "suggestions"
)

// Valid returns true if the operation kind is known.
func (k OperationKind) Valid() bool {
	switch k {
	case OpExpansion, OpMetrics, OpSERP, OpSuggestions:
		return true
	}
	return false
}

// BudgetLimits is the read-only spend configuration for a run.
type BudgetLimits struct {
	// MaxCostPerRequest is the ceiling for a single oracle call, USD.
	MaxCostPerRequest float64 `json:"max_cost_per_request" toml:"max_cost_per_request"`

	// MaxDailyCost is the daily spend ceiling, USD.
	MaxDailyCost float64 `json:"max_daily_cost" toml:"max_daily_cost"`

	// MaxMonthlyCost is the monthly spend ceiling, USD.
	MaxMonthlyCost float64 `json:"max_monthly_cost" toml:"max_monthly_cost"`

	// MaxKeywordsPerBatch caps keywords submitted in one call.
	MaxKeywordsPerBatch int `json:"max_keywords_per_batch" toml:"max_keywords_per_batch"`

	// AlertThresholdPercent is the usage percentage at which warnings
	// are attached to otherwise-allowed operations.
	AlertThresholdPercent float64 `json:"alert_threshold_percent" toml:"alert_threshold_percent"`
}

// DefaultLimits returns the stock budget configuration.
func DefaultLimits() BudgetLimits {
	return BudgetLimits{
		MaxCostPerRequest:     0.50,
		MaxDailyCost:          2.00,
		MaxMonthlyCost:        20.00,
		MaxKeywordsPerBatch:   100,
		AlertThresholdPercent: 80,
	}
}

// Validate checks that the limits are internally consistent.
// Malformed limits are a configuration error and must fail fast.
func (l BudgetLimits) Validate() error {
	if l.MaxCostPerRequest <= 0 {
		return fmt.Errorf("%w: max_cost_per_request must be positive, got %v", ErrInvalidLimits, l.MaxCostPerRequest)
	}
	if l.MaxDailyCost <= 0 {
		return fmt.Errorf("%w: max_daily_cost must be positive, got %v", ErrInvalidLimits, l.MaxDailyCost)
	}
	if l.MaxMonthlyCost <= 0 {
		return fmt.Errorf("%w: max_monthly_cost must be positive, got %v", ErrInvalidLimits, l.MaxMonthlyCost)
	}
	if l.MaxKeywordsPerBatch <= 0 {
		return fmt.Errorf("%w: max_keywords_per_batch must be positive, got %d", ErrInvalidLimits, l.MaxKeywordsPerBatch)
	}
	if l.AlertThresholdPercent <= 0 || l.AlertThresholdPercent > 100 {
		return fmt.Errorf("%w: alert_threshold_percent must be in (0, 100], got %v", ErrInvalidLimits, l.AlertThresholdPercent)
	}
	return nil
}

// UsageLedger is the accumulated spend state guarded by the budget
// guard. It is mutated only through the guard.
type UsageLedger struct {
	// TodayCost is the spend recorded since the last daily reset, USD.
	TodayCost float64 `json:"today_cost"`

	// MonthCost is the spend recorded since the last monthly reset, USD.
	MonthCost float64 `json:"month_cost"`

	// TotalRequests counts completed oracle calls.
	TotalRequests int64 `json:"total_requests"`
}

// Decision is the budget guard's advisory verdict for a prospective
// operation. It never carries an error: a rejected operation is a
// structured outcome, not a failure.
type Decision struct {
	// Allowed reports whether the caller may proceed.
	Allowed bool `json:"allowed"`

	// Reason explains a rejection. Empty when Allowed.
	Reason string `json:"reason,omitempty"`

	// Warning flags an allowed operation that crosses the alert
	// threshold. Non-blocking.
	Warning string `json:"warning,omitempty"`
}

// WindowUsage reports spend against one budget window.
type WindowUsage struct {
	Used      float64 `json:"used"`
	Limit     float64 `json:"limit"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// UsageStats is a point-in-time snapshot of ledger state against the
// configured limits.
type UsageStats struct {
	Today         WindowUsage `json:"today"`
	Month         WindowUsage `json:"month"`
	TotalRequests int64       `json:"total_requests"`
}
