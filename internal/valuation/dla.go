package valuation

// calculateDLA runs the Displaced Labor Arbitrage method: what the
// output would have cost to produce by hand, minus the hidden friction
// of waiting for, reading, and fixing machine output.
func calculateDLA(req Request) DLACalculation {
	in := DLAInputs{
		OutputCharCount:    fval(req.OutputCharCount, defaultDLAOutputChars),
		APILatencySeconds:  fval(req.APILatencySeconds, defaultDLALatencySeconds),
		EditSessionSeconds: fval(req.EditSessionSeconds, defaultDLAEditSeconds),
		APICostUSD:         fval(req.APICostUSD, defaultDLAAPICostUSD),
		HumanWPM:           fval(req.HumanWPM, defaultDLAHumanWPM),
		HumanReadingWPM:    fval(req.HumanReadingWPM, defaultDLAReadingWPM),
		HourlyWage:         fval(req.HourlyWage, defaultDLAHourlyWage),
	}

	minuteRate := in.HourlyWage / 60
	words := in.OutputCharCount / charsPerWord
	manualMinutes := safeDiv(words, in.HumanWPM)
	gross := manualMinutes * minuteRate

	waitCost := (in.APILatencySeconds / 60) * minuteRate
	readingCost := safeDiv(words, in.HumanReadingWPM) * minuteRate
	fixingCost := (in.EditSessionSeconds / 60) * minuteRate
	friction := waitCost + readingCost + fixingCost + in.APICostUSD
	net := gross - friction

	return DLACalculation{
		Inputs:              in,
		ManualMinutes:       manualMinutes,
		GrossLaborValue:     gross,
		WaitCost:            waitCost,
		ReadingCost:         readingCost,
		FixingCost:          fixingCost,
		HiddenFrictionCost:  friction,
		TrueNetValue:        net,
		ArbitrageEfficiency: safeDiv(net, gross),
		IsProfitable:        net > 0,
	}
}
