package valuation

// Word and token density assumptions shared across methods.
const (
	charsPerWord  = 5.0
	charsPerToken = 4
)

// DLA defaults applied when the corresponding telemetry is omitted.
const (
	defaultDLAOutputChars    = 5000.0
	defaultDLALatencySeconds = 10.0
	defaultDLAEditSeconds    = 120.0
	defaultDLAAPICostUSD     = 0.01
	defaultDLAHumanWPM       = 40.0
	defaultDLAReadingWPM     = 250.0
	defaultDLAHourlyWage     = 60.0
)

// EAVP defaults and the per-regeneration correction penalty.
const (
	defaultEAVPOutputChars     = 4000.0
	defaultEAVPUserWPM         = 50.0
	defaultEAVPEditMinutes     = 5.0
	defaultEAVPRegenerations   = 1
	defaultEAVPMarketRate      = 100.0
	regenerationPenaltyMinutes = 2.0
)

// PRICE defaults and fee percentages.
const (
	defaultPRICEHumanMinutes    = 60.0
	defaultPRICEHourlyRate      = 80.0
	defaultPRICEReviewMinutes   = 5.0
	defaultPRICETokenCost       = 0.05
	defaultPRICEReliability     = 0.9
	defaultPRICEYearlyVolume    = 250.0
	defaultPRICEValuedParameter = "Core Logic"
	defaultPRICEParameterWeight = 1.0
	priceFreelanceFeePct        = 0.15
	priceMarketplaceFeePct      = 0.02
)

// VECTOR defaults, the correction-time multiplier, and price percentages.
const (
	defaultVECTORConstraints   = 4
	defaultVECTORContext       = 3
	defaultVECTORFeasibility   = 4
	defaultVECTORSafety        = 0
	defaultVECTORHourlyRate    = 100.0
	defaultVECTORSavedMinutes  = 45.0
	defaultVECTORAnnualVolume  = 200.0
	defaultVECTORAPICostPerRun = 0.5
	vectorCorrectionMultiplier = 0.6
	vectorFreelancePricePct    = 0.15
	vectorMarketplacePricePct  = 0.01
)

// PVC dimension weights (sum to 1.0), penalty coefficients, and the
// token-length normalization band.
const (
	pvcWeightGoal        = 0.35
	pvcWeightContext     = 0.15
	pvcWeightSpecificity = 0.20
	pvcWeightStructure   = 0.15
	pvcWeightFeasibility = 0.15

	pvcPenaltyAmbiguity = 0.8
	pvcPenaltyRisk      = 1.0
	pvcPenaltyLength    = 0.3

	pvcTokenMin = 40
	pvcTokenOpt = 250
	pvcTokenMax = 2000
)

// SCOPE component weights for the Prompt-Value-Index.
const (
	scopeWeightStructure = 1.0
	scopeWeightHardness  = 2.0
	scopeWeightDensity   = 1.0
)

// safeDiv returns n/d, or 0 when the denominator is zero. Formulas use
// it wherever a denominator can legitimately collapse, so reports never
// carry NaN or Inf.
func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
