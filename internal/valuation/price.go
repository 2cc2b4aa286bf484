package valuation

// calculatePRICE runs the Asset-Pricing method: per-run savings over
// the human alternative, discounted by reliability and scaled to a
// yearly volume. Volume, weight, and reliability are multiplicative,
// so a zero in any one collapses the total asset value to zero.
func calculatePRICE(req Request) PRICECalculation {
	in := PRICEInputs{
		HumanTimeMinutes:  fval(req.HumanTimeMinutes, defaultPRICEHumanMinutes),
		HumanHourlyRate:   fval(req.HumanHourlyRate, defaultPRICEHourlyRate),
		ReviewTimeMinutes: fval(req.ReviewTimeMinutes, defaultPRICEReviewMinutes),
		TokenCost:         fval(req.TokenCost, defaultPRICETokenCost),
		Reliability:       fval(req.Reliability, defaultPRICEReliability),
		YearlyVolume:      fval(req.YearlyVolume, defaultYearlyVolume(req.UseCase)),
		UseCase:           req.UseCase,
		ValuedParameter:   req.ValuedParameter,
		ParameterWeight:   fval(req.ParameterWeight, defaultPRICEParameterWeight),
	}
	if in.UseCase == "" {
		in.UseCase = UseCaseAdHoc
	}
	if in.ValuedParameter == "" {
		in.ValuedParameter = defaultPRICEValuedParameter
	}

	minuteRate := in.HumanHourlyRate / 60
	humanCost := in.HumanTimeMinutes * minuteRate
	reviewCost := in.ReviewTimeMinutes * minuteRate
	operational := in.TokenCost + reviewCost
	netRunSavings := (humanCost - operational) * in.Reliability
	total := netRunSavings * in.YearlyVolume * in.ParameterWeight

	return PRICECalculation{
		Inputs:           in,
		HumanCost:        humanCost,
		AICost:           in.TokenCost,
		ReviewCost:       reviewCost,
		OperationalCost:  operational,
		NetRunSavings:    netRunSavings,
		TotalAssetValue:  total,
		FreelancePrice:   total * priceFreelanceFeePct,
		MarketplacePrice: total * priceMarketplaceFeePct,
	}
}

// defaultYearlyVolume picks the use-case benchmark volume when one is
// declared, otherwise the generic default.
func defaultYearlyVolume(uc UseCase) float64 {
	if v, ok := useCaseBenchmarks[uc]; ok {
		return v
	}
	return defaultPRICEYearlyVolume
}
