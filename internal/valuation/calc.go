package valuation

import "github.com/konkred/valuation-cli/internal/judge"

// Calculation is the closed set of per-method derived metrics. The
// unexported marker seals the set: adding a seventh method means adding
// a struct here and extending every switch over Calculation, which the
// compiler then enforces.
type Calculation interface {
	// Method returns the methodology that produced this calculation.
	Method() Method

	calculation()
}

// DLAInputs echoes the resolved Labor-Arbitrage telemetry.
type DLAInputs struct {
	OutputCharCount    float64 `json:"output_char_count"`
	APILatencySeconds  float64 `json:"api_latency_seconds"`
	EditSessionSeconds float64 `json:"edit_session_seconds"`
	APICostUSD         float64 `json:"api_cost_usd"`
	HumanWPM           float64 `json:"human_wpm"`
	HumanReadingWPM    float64 `json:"human_reading_wpm"`
	HourlyWage         float64 `json:"hourly_wage"`
}

// DLACalculation is the Displaced Labor Arbitrage result.
type DLACalculation struct {
	Inputs              DLAInputs `json:"inputs"`
	ManualMinutes       float64   `json:"manual_minutes"`
	GrossLaborValue     float64   `json:"gross_labor_value"`
	WaitCost            float64   `json:"wait_cost"`
	ReadingCost         float64   `json:"reading_cost"`
	FixingCost          float64   `json:"fixing_cost"`
	HiddenFrictionCost  float64   `json:"hidden_friction_cost"`
	TrueNetValue        float64   `json:"true_net_value"`
	ArbitrageEfficiency float64   `json:"arbitrage_efficiency"`
	IsProfitable        bool      `json:"is_profitable"`
}

func (DLACalculation) Method() Method { return MethodDLA }
func (DLACalculation) calculation() {}

// EAVPInputs echoes the resolved Empirical-Verification telemetry.
type EAVPInputs struct {
	OutputChars     float64 `json:"output_chars"`
	UserWPM         float64 `json:"user_wpm"`
	EditTimeMinutes float64 `json:"edit_time_minutes"`
	Regenerations   int     `json:"regenerations"`
	MarketRate      float64 `json:"market_rate"`
}

// EAVPCalculation is the Empirical Audited Value Protocol result.
type EAVPCalculation struct {
	Inputs                EAVPInputs `json:"inputs"`
	ManualCreationMinutes float64    `json:"manual_creation_minutes"`
	CorrectionTaxMinutes  float64    `json:"correction_tax_minutes"`
	NetMinutesSaved       float64    `json:"net_minutes_saved"`
	AuditedValue          float64    `json:"audited_value"`
	GrossLaborValue       float64    `json:"gross_labor_value"`
	CorrectionCost        float64    `json:"correction_cost"`
	EfficiencyRatio       float64    `json:"efficiency_ratio"`
}

func (EAVPCalculation) Method() Method { return MethodEAVP }
func (EAVPCalculation) calculation() {}

// PRICEInputs echoes the resolved Asset-Pricing telemetry.
type PRICEInputs struct {
	HumanTimeMinutes  float64 `json:"human_time_minutes"`
	HumanHourlyRate   float64 `json:"human_hourly_rate"`
	ReviewTimeMinutes float64 `json:"review_time_minutes"`
	TokenCost         float64 `json:"token_cost"`
	Reliability       float64 `json:"reliability"`
	YearlyVolume      float64 `json:"yearly_volume"`
	UseCase           UseCase `json:"use_case"`
	ValuedParameter   string  `json:"valued_parameter"`
	ParameterWeight   float64 `json:"parameter_weight"`
}

// PRICECalculation is the Asset-Pricing result.
type PRICECalculation struct {
	Inputs           PRICEInputs `json:"inputs"`
	HumanCost        float64     `json:"human_cost"`
	AICost           float64     `json:"ai_cost"`
	ReviewCost       float64     `json:"review_cost"`
	OperationalCost  float64     `json:"operational_cost"`
	NetRunSavings    float64     `json:"net_run_savings"`
	TotalAssetValue  float64     `json:"total_asset_value"`
	FreelancePrice   float64     `json:"freelance_price"`
	MarketplacePrice float64     `json:"marketplace_price"`
}

func (PRICECalculation) Method() Method { return MethodPRICE }
func (PRICECalculation) calculation() {}

// VECTORInputs echoes the resolved Viability-Vector telemetry.
type VECTORInputs struct {
	ScoreConstraints int     `json:"score_constraints"`
	ScoreContext     int     `json:"score_context"`
	ScoreFeasibility int     `json:"score_feasibility"`
	ScoreSafety      int     `json:"score_safety"`
	HumanHourlyRate  float64 `json:"human_hourly_rate"`
	TimeSavedMinutes float64 `json:"time_saved_minutes"`
	AnnualVolume     float64 `json:"annual_volume"`
	APICostPerRun    float64 `json:"api_cost_per_run"`
}

// VECTORStatus is the viability verdict.
type VECTORStatus string

const (
	StatusViableAsset VECTORStatus = "VIABLE ASSET"
	StatusScrapAsset  VECTORStatus = "SCRAP ASSET"
)

// VECTORCalculation is the Viability-Vector result. Q is the composite
// reliability coefficient in [0, 1].
type VECTORCalculation struct {
	Inputs           VECTORInputs `json:"inputs"`
	Q                float64      `json:"q"`
	GrossValuePerRun float64      `json:"gross_value_per_run"`
	CorrectionCost   float64      `json:"correction_cost"`
	NetUtility       float64      `json:"net_utility"`
	TotalAnnualValue float64      `json:"total_annual_value"`
	FreelancePrice   float64      `json:"freelance_price"`
	MarketplacePrice float64      `json:"marketplace_price"`
	Status           VECTORStatus `json:"status"`
	StatusReason     string       `json:"status_reason,omitempty"`
}

func (VECTORCalculation) Method() Method { return MethodVECTOR }
func (VECTORCalculation) calculation() {}

// PVCCalculation is the Prompt Value Certification result: the raw
// rubric judgment plus the deterministic composite index.
type PVCCalculation struct {
	Raw              judge.PVCScores `json:"raw_scores"`
	TokenCount       int             `json:"token_count"`
	BaseQuality      float64         `json:"base_quality"`
	PenalizedQuality float64         `json:"penalized_quality"`
	LengthPenalty    float64         `json:"length_penalty"`
	FinalScore       float64         `json:"final_score"`
}

func (PVCCalculation) Method() Method { return MethodPVC }
func (PVCCalculation) calculation() {}

// ScopeTier is the display tier derived from the Prompt-Value-Index.
type ScopeTier string

const (
	TierHighValueAsset ScopeTier = "High-Value Asset"
	TierMarketStandard ScopeTier = "Market Standard"
	TierScrapValue     ScopeTier = "Scrap Value"
)

// SCOPECalculation is the semantic-density result. PVI is unbounded
// above but stays in roughly [0, 3] for rubric-conformant variables.
type SCOPECalculation struct {
	Variables judge.ScopeVariables `json:"variables"`
	PVI       float64              `json:"pvi"`
	Tier      ScopeTier            `json:"tier"`
}

func (SCOPECalculation) Method() Method { return MethodSCOPE }
func (SCOPECalculation) calculation() {}
