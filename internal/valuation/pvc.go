package valuation

import (
	"context"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// calculatePVC runs Prompt Value Certification: an external structural
// audit normalized into a weighted 0-100 index, penalized for
// ambiguity, safety risk, and token-length drift outside the optimal
// band. The external judgment is mandatory; without it there is no
// meaningful score.
func (e *Engine) calculatePVC(ctx context.Context, req Request) (PVCCalculation, error) {
	if strings.TrimSpace(req.InputPrompt) == "" {
		return PVCCalculation{}, eris.New("valuation: PVC requires a non-empty prompt")
	}
	if e.judge == nil {
		return PVCCalculation{}, eris.New("valuation: no qualitative judge configured")
	}

	raw, err := e.judge.ScorePVC(ctx, req.InputPrompt)
	if err != nil {
		return PVCCalculation{}, eris.Wrap(err, "valuation: PVC judgment")
	}

	g := float64(raw.GoalClarity) / 4
	c := float64(raw.ContextSufficiency) / 4
	s := float64(raw.Specificity) / 4
	d := float64(raw.Structure) / 4
	f := float64(raw.Feasibility) / 4
	a := float64(raw.Ambiguity) / 4
	rk := float64(raw.Risk) / 4

	base := 100 * (g*pvcWeightGoal + c*pvcWeightContext + s*pvcWeightSpecificity +
		d*pvcWeightStructure + f*pvcWeightFeasibility)
	penalized := base * math.Pow(1-pvcPenaltyAmbiguity*a, 1.2) * (1 - pvcPenaltyRisk*rk)

	tokens := len(req.InputPrompt) / charsPerToken
	lengthPenalty := 0.0
	switch {
	case tokens < pvcTokenMin:
		lengthPenalty = float64(pvcTokenMin-tokens) / pvcTokenMin
	case tokens > pvcTokenOpt:
		lengthPenalty = math.Min(float64(tokens-pvcTokenOpt)/(pvcTokenMax-pvcTokenOpt), 1)
	}

	final := clamp(penalized*(1-pvcPenaltyLength*lengthPenalty), 0, 100)

	return PVCCalculation{
		Raw:              *raw,
		TokenCount:       tokens,
		BaseQuality:      base,
		PenalizedQuality: penalized,
		LengthPenalty:    lengthPenalty,
		FinalScore:       final,
	}, nil
}
