package valuation

import (
	"context"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// calculateSCOPE runs the semantic-density audit. The external judge
// supplies the five fractional shape variables; the Prompt-Value-Index
// weighs structure, constraint hardness, and density against squared
// entropy, then scales by token efficiency.
func (e *Engine) calculateSCOPE(ctx context.Context, req Request) (SCOPECalculation, error) {
	if strings.TrimSpace(req.InputPrompt) == "" {
		return SCOPECalculation{}, eris.New("valuation: SCOPE requires a non-empty prompt")
	}
	if e.judge == nil {
		return SCOPECalculation{}, eris.New("valuation: no qualitative judge configured")
	}

	vars, err := e.judge.ScoreSCOPE(ctx, req.InputPrompt)
	if err != nil {
		return SCOPECalculation{}, eris.Wrap(err, "valuation: SCOPE judgment")
	}

	weighted := vars.Structure*scopeWeightStructure +
		vars.Hardness*scopeWeightHardness +
		vars.Density*scopeWeightDensity
	pvi := safeDiv(weighted, math.Pow(1+vars.Entropy, 2)) * vars.TokenEfficiency

	return SCOPECalculation{
		Variables: *vars,
		PVI:       pvi,
		Tier:      scopeTier(pvi),
	}, nil
}

// scopeTier maps a PVI to its display tier.
func scopeTier(pvi float64) ScopeTier {
	switch {
	case pvi > 2.0:
		return TierHighValueAsset
	case pvi > 0.5:
		return TierMarketStandard
	default:
		return TierScrapValue
	}
}
