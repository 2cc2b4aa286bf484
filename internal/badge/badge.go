// Package badge defines the static achievement catalog attached to
// valuation reports. Entries are fixed at compile time; the evaluator
// in the valuation package selects subsets of this catalog, never
// constructs badges dynamically.
package badge

import "sort"

// Tier orders badges for display: Gold outranks Silver outranks Bronze.
type Tier string

const (
	TierGold   Tier = "Gold"
	TierSilver Tier = "Silver"
	TierBronze Tier = "Bronze"
)

// rank returns the sort rank of a tier, lower first.
func (t Tier) rank() int {
	switch t {
	case TierGold:
		return 0
	case TierSilver:
		return 1
	default:
		return 2
	}
}

// Badge is one catalog entry. Icon is an opaque reference for
// presentation layers.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
	Icon        string `json:"icon"`
}

// Catalog entry IDs.
const (
	IDNeuralAlchemist     = "NEURAL_ALCHEMIST"
	IDBulletproofLogic    = "BULLETPROOF_LOGIC"
	IDROITitan            = "ROI_TITAN"
	IDSemanticLegend      = "SEMANTIC_LEGEND"
	IDPrecisionEngineer   = "PRECISION_ENGINEER"
	IDSignalMaestro       = "SIGNAL_MAESTRO"
	IDMarketDisruptor     = "MARKET_DISRUPTOR"
	IDStructuredPro       = "STRUCTURED_PRO"
	IDSafeHarbor          = "SAFE_HARBOR"
	IDFeasibilityVerified = "FEASIBILITY_VERIFIED"
	IDEfficiencyBoost     = "EFFICIENCY_BOOST"
	IDCleanSignal         = "CLEAN_SIGNAL"
)

// catalog holds every badge in declaration order. Within a tier, this
// order is the order badges appear on a report.
var catalog = []Badge{
	{IDNeuralAlchemist, "Neural Alchemist", "PVC Score > 98. Absolute mastery of neural logic and instruction transmutation.", TierGold, "Sparkles"},
	{IDBulletproofLogic, "Bulletproof Logic", "VECTOR Q-Score > 0.95. Verified for high-stakes mission-critical production.", TierGold, "ShieldAlert"},
	{IDROITitan, "ROI Titan", "DLA Net Profit > $50/run. Significant economic displacement verified.", TierGold, "TrendingUp"},
	{IDSemanticLegend, "Semantic Legend", "SCOPE PVI > 2.5. Extreme information density and architectural perfection.", TierGold, "Crown"},

	{IDPrecisionEngineer, "Precision Engineer", "PVC Goal Clarity = 4. Zero ambiguity in objective definition.", TierSilver, "Target"},
	{IDSignalMaestro, "Signal Maestro", "SCOPE Token Efficiency > 0.9. Extreme semantic density with near-zero filler.", TierSilver, "Radio"},
	{IDMarketDisruptor, "Market Disruptor", "PRICE TAV > $50,000. High-value IP asset for enterprise workflows.", TierSilver, "Zap"},
	{IDStructuredPro, "Structured Pro", "PVC Structure Score = 4. Perfect use of semantic delimiters.", TierSilver, "Layers"},

	{IDSafeHarbor, "Safe Harbor", "Risk Score = 0. Asset is clean, compliant, and verified safe.", TierBronze, "ShieldCheck"},
	{IDFeasibilityVerified, "Feasibility Verified", "Feasibility Score = 4. Perfectly aligned with LLM capabilities.", TierBronze, "CheckCircle"},
	{IDEfficiencyBoost, "Efficiency Boost", "EAVP Efficiency > 50%. Massive verified time-savings.", TierBronze, "Zap"},
	{IDCleanSignal, "Clean Signal", "SCOPE Entropy < 0.1. Extremely low risk of interpretative drift.", TierBronze, "Activity"},
}

// Catalog returns a copy of the full badge catalog in declaration order.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by ID.
func Lookup(id string) (Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// SortByTier orders badges Gold, Silver, Bronze in place, keeping
// relative order within each tier.
func SortByTier(badges []Badge) {
	sort.SliceStable(badges, func(i, j int) bool {
		return badges[i].Tier.rank() < badges[j].Tier.rank()
	})
}
