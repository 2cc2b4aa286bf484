package valuation

// calculateEAVP runs the Empirical Audited Value Protocol: time saved
// against hand-typing the output, taxed by edit time and a fixed
// penalty per regeneration.
func calculateEAVP(req Request) EAVPCalculation {
	in := EAVPInputs{
		OutputChars:     fval(req.OutputChars, defaultEAVPOutputChars),
		UserWPM:         fval(req.UserWPM, defaultEAVPUserWPM),
		EditTimeMinutes: fval(req.EditTimeMinutes, defaultEAVPEditMinutes),
		Regenerations:   ival(req.Regenerations, defaultEAVPRegenerations),
		MarketRate:      fval(req.MarketRate, defaultEAVPMarketRate),
	}

	words := in.OutputChars / charsPerWord
	manual := safeDiv(words, in.UserWPM)
	correctionTax := in.EditTimeMinutes + float64(in.Regenerations)*regenerationPenaltyMinutes
	netSaved := manual - correctionTax

	return EAVPCalculation{
		Inputs:                in,
		ManualCreationMinutes: manual,
		CorrectionTaxMinutes:  correctionTax,
		NetMinutesSaved:       netSaved,
		AuditedValue:          (netSaved / 60) * in.MarketRate,
		GrossLaborValue:       (manual / 60) * in.MarketRate,
		CorrectionCost:        (correctionTax / 60) * in.MarketRate,
		EfficiencyRatio:       safeDiv(netSaved, manual),
	}
}
