package valuation

import (
	"math"

	"github.com/rotisserie/eris"
)

// UseCase categorizes how a PRICE-valued prompt is deployed. Each use
// case carries a benchmark yearly run volume used when the caller does
// not supply one.
type UseCase string

const (
	UseCaseAdHoc    UseCase = "Ad-hoc"   // one-off creative/analytical tasks
	UseCaseSOP      UseCase = "SOP"      // standard operating procedure, weekly use
	UseCasePipeline UseCase = "Pipeline" // automated API-driven workflow
)

// useCaseBenchmarks maps a use case to its benchmark runs per year.
var useCaseBenchmarks = map[UseCase]float64{
	UseCaseAdHoc:    1,
	UseCaseSOP:      200,
	UseCasePipeline: 5000,
}

// Request is the superset input record for all six methodologies. Every
// telemetry field is a pointer: nil means the field was omitted and the
// documented default applies, while a non-nil zero is honored as an
// explicit zero (a supplied wage of 0 produces a zero-cost result rather
// than falling back to the default).
type Request struct {
	PromptTitle string `json:"prompt_title,omitempty"`
	InputPrompt string `json:"input_prompt,omitempty"`

	// DLA telemetry.
	OutputCharCount    *float64 `json:"output_char_count,omitempty"`
	APILatencySeconds  *float64 `json:"api_latency_seconds,omitempty"`
	EditSessionSeconds *float64 `json:"edit_session_seconds,omitempty"`
	APICostUSD         *float64 `json:"api_cost_usd,omitempty"`
	HumanWPM           *float64 `json:"human_wpm,omitempty"`
	HumanReadingWPM    *float64 `json:"human_reading_wpm,omitempty"`
	HourlyWage         *float64 `json:"hourly_wage,omitempty"`

	// EAVP telemetry.
	OutputChars     *float64 `json:"output_chars,omitempty"`
	UserWPM         *float64 `json:"user_wpm,omitempty"`
	EditTimeMinutes *float64 `json:"edit_time_minutes,omitempty"`
	Regenerations   *int     `json:"regenerations,omitempty"`
	MarketRate      *float64 `json:"market_rate,omitempty"`

	// PRICE telemetry.
	HumanTimeMinutes  *float64 `json:"human_time_minutes,omitempty"`
	HumanHourlyRate   *float64 `json:"human_hourly_rate,omitempty"`
	ReviewTimeMinutes *float64 `json:"review_time_minutes,omitempty"`
	TokenCost         *float64 `json:"token_cost,omitempty"`
	Reliability       *float64 `json:"reliability,omitempty"`
	YearlyVolume      *float64 `json:"yearly_volume,omitempty"`
	UseCase           UseCase  `json:"use_case,omitempty"`
	ValuedParameter   string   `json:"valued_parameter,omitempty"`
	ParameterWeight   *float64 `json:"parameter_weight,omitempty"`

	// VECTOR telemetry. The four scores are 0-5 integers; safety is
	// inverted (higher is worse). VectorHourlyRate is separate from
	// HumanHourlyRate because the two methods carry distinct defaults.
	ScoreConstraints *int     `json:"score_constraints,omitempty"`
	ScoreContext     *int     `json:"score_context,omitempty"`
	ScoreFeasibility *int     `json:"score_feasibility,omitempty"`
	ScoreSafety      *int     `json:"score_safety,omitempty"`
	VectorHourlyRate *float64 `json:"vector_hourly_rate,omitempty"`
	TimeSavedMinutes *float64 `json:"time_saved_minutes,omitempty"`
	AnnualVolume     *float64 `json:"annual_volume,omitempty"`
	APICostPerRun    *float64 `json:"api_cost_per_run,omitempty"`
}

// Validate rejects present-but-invalid telemetry before any calculation
// runs. Missing fields are fine (defaults apply later); negative or
// non-finite values are not.
func (r *Request) Validate() error {
	floats := []struct {
		name string
		v    *float64
	}{
		{"output_char_count", r.OutputCharCount},
		{"api_latency_seconds", r.APILatencySeconds},
		{"edit_session_seconds", r.EditSessionSeconds},
		{"api_cost_usd", r.APICostUSD},
		{"human_wpm", r.HumanWPM},
		{"human_reading_wpm", r.HumanReadingWPM},
		{"hourly_wage", r.HourlyWage},
		{"output_chars", r.OutputChars},
		{"user_wpm", r.UserWPM},
		{"edit_time_minutes", r.EditTimeMinutes},
		{"market_rate", r.MarketRate},
		{"human_time_minutes", r.HumanTimeMinutes},
		{"human_hourly_rate", r.HumanHourlyRate},
		{"review_time_minutes", r.ReviewTimeMinutes},
		{"token_cost", r.TokenCost},
		{"reliability", r.Reliability},
		{"yearly_volume", r.YearlyVolume},
		{"parameter_weight", r.ParameterWeight},
		{"vector_hourly_rate", r.VectorHourlyRate},
		{"time_saved_minutes", r.TimeSavedMinutes},
		{"annual_volume", r.AnnualVolume},
		{"api_cost_per_run", r.APICostPerRun},
	}
	for _, f := range floats {
		if f.v == nil {
			continue
		}
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
			return eris.Errorf("valuation: %s must be finite", f.name)
		}
		if *f.v < 0 {
			return eris.Errorf("valuation: %s must not be negative", f.name)
		}
	}

	if r.Reliability != nil && *r.Reliability > 1 {
		return eris.New("valuation: reliability must be within [0, 1]")
	}
	if r.Regenerations != nil && *r.Regenerations < 0 {
		return eris.New("valuation: regenerations must not be negative")
	}

	scores := []struct {
		name string
		v    *int
	}{
		{"score_constraints", r.ScoreConstraints},
		{"score_context", r.ScoreContext},
		{"score_feasibility", r.ScoreFeasibility},
		{"score_safety", r.ScoreSafety},
	}
	for _, s := range scores {
		if s.v == nil {
			continue
		}
		if *s.v < 0 || *s.v > 5 {
			return eris.Errorf("valuation: %s must be within [0, 5]", s.name)
		}
	}

	if r.UseCase != "" {
		if _, ok := useCaseBenchmarks[r.UseCase]; !ok {
			return eris.Errorf("valuation: unknown use case %q", string(r.UseCase))
		}
	}

	return nil
}

// fval resolves an optional float against its documented default.
func fval(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// ival resolves an optional int against its documented default.
func ival(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
