package valuation

import "github.com/konkred/valuation-cli/internal/badge"

// EvaluateBadges returns the catalog badges a completed report has
// earned, Gold first, catalog order within a tier. It is a pure
// function of the single report; nothing is accumulated between calls.
// Every predicate inspects one method's calculation today, but the
// switch receives the whole report so a future badge could span fields
// from several shapes.
func EvaluateBadges(r *Report) []badge.Badge {
	var earned []badge.Badge
	for _, b := range badge.Catalog() {
		if earns(b.ID, r) {
			earned = append(earned, b)
		}
	}
	badge.SortByTier(earned)
	return earned
}

// earns evaluates one badge's threshold predicate against a report.
func earns(id string, r *Report) bool {
	switch id {
	case badge.IDNeuralAlchemist:
		c, ok := r.Calculations.(PVCCalculation)
		return ok && c.FinalScore >= 98
	case badge.IDPrecisionEngineer:
		c, ok := r.Calculations.(PVCCalculation)
		return ok && c.Raw.GoalClarity == 4
	case badge.IDStructuredPro:
		c, ok := r.Calculations.(PVCCalculation)
		return ok && c.Raw.Structure == 4
	case badge.IDSafeHarbor:
		c, ok := r.Calculations.(PVCCalculation)
		return ok && c.Raw.Risk == 0
	case badge.IDFeasibilityVerified:
		c, ok := r.Calculations.(PVCCalculation)
		return ok && c.Raw.Feasibility == 4

	case badge.IDSemanticLegend:
		c, ok := r.Calculations.(SCOPECalculation)
		return ok && c.PVI > 2.5
	case badge.IDSignalMaestro:
		c, ok := r.Calculations.(SCOPECalculation)
		return ok && c.Variables.TokenEfficiency > 0.9
	case badge.IDCleanSignal:
		c, ok := r.Calculations.(SCOPECalculation)
		return ok && c.Variables.Entropy < 0.1

	case badge.IDROITitan:
		c, ok := r.Calculations.(DLACalculation)
		return ok && c.TrueNetValue > 50
	case badge.IDBulletproofLogic:
		c, ok := r.Calculations.(VECTORCalculation)
		return ok && c.Q > 0.95
	case badge.IDMarketDisruptor:
		c, ok := r.Calculations.(PRICECalculation)
		return ok && c.TotalAssetValue > 50000
	case badge.IDEfficiencyBoost:
		c, ok := r.Calculations.(EAVPCalculation)
		return ok && c.EfficiencyRatio > 0.5
	}
	return false
}
