package valuation

import "math"

// calculateVECTOR runs the Viability-Vector method. The reliability
// coefficient Q is the geometric mean of the three positive sub-scores
// (normalized to [0, 1]) scaled by the inverted safety score; a zero in
// any positive sub-score collapses Q to zero (weakest link). The less
// reliable the asset, the more of its saved time is clawed back as
// correction labor.
func calculateVECTOR(req Request) VECTORCalculation {
	in := VECTORInputs{
		ScoreConstraints: ival(req.ScoreConstraints, defaultVECTORConstraints),
		ScoreContext:     ival(req.ScoreContext, defaultVECTORContext),
		ScoreFeasibility: ival(req.ScoreFeasibility, defaultVECTORFeasibility),
		ScoreSafety:      ival(req.ScoreSafety, defaultVECTORSafety),
		HumanHourlyRate:  fval(req.VectorHourlyRate, defaultVECTORHourlyRate),
		TimeSavedMinutes: fval(req.TimeSavedMinutes, defaultVECTORSavedMinutes),
		AnnualVolume:     fval(req.AnnualVolume, defaultVECTORAnnualVolume),
		APICostPerRun:    fval(req.APICostPerRun, defaultVECTORAPICostPerRun),
	}

	q := math.Cbrt(
		(float64(in.ScoreConstraints)/5)*
			(float64(in.ScoreContext)/5)*
			(float64(in.ScoreFeasibility)/5),
	) * (1 - float64(in.ScoreSafety)/5)

	minuteRate := in.HumanHourlyRate / 60
	gross := in.TimeSavedMinutes * minuteRate
	correction := in.TimeSavedMinutes * vectorCorrectionMultiplier * (1 - q) * minuteRate
	net := gross - correction - in.APICostPerRun
	annual := net * in.AnnualVolume

	status := StatusViableAsset
	reason := ""
	switch {
	case q == 0:
		// A zero positive sub-score voids viability outright, even when
		// the raw utility math still nets positive.
		status = StatusScrapAsset
		reason = "reliability coefficient collapsed to zero; a zero sub-score voids production viability"
	case net <= 0:
		status = StatusScrapAsset
		reason = "correction labor and API cost exceed the value of time saved per run"
	}

	return VECTORCalculation{
		Inputs:           in,
		Q:                q,
		GrossValuePerRun: gross,
		CorrectionCost:   correction,
		NetUtility:       net,
		TotalAnnualValue: annual,
		FreelancePrice:   annual * vectorFreelancePricePct,
		MarketplacePrice: annual * vectorMarketplacePricePct,
		Status:           status,
		StatusReason:     reason,
	}
}
