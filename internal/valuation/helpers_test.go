package valuation

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/konkred/valuation-cli/internal/judge"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// stubJudge returns fixed judgments, or a canned error.
type stubJudge struct {
	pvc   judge.PVCScores
	scope judge.ScopeVariables
	err   error
}

func (s *stubJudge) ScorePVC(ctx context.Context, prompt string) (*judge.PVCScores, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.pvc
	return &out, nil
}

func (s *stubJudge) ScoreSCOPE(ctx context.Context, prompt string) (*judge.ScopeVariables, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.scope
	return &out, nil
}

// perfectJudge scores every dimension at its best value.
func perfectJudge() *stubJudge {
	return &stubJudge{
		pvc: judge.PVCScores{
			GoalClarity:        4,
			ContextSufficiency: 4,
			Specificity:        4,
			Structure:          4,
			Feasibility:        4,
			Ambiguity:          0,
			Risk:               0,
			Reasoning:          "exemplary",
		},
		scope: judge.ScopeVariables{
			Structure:       1.0,
			Hardness:        1.0,
			Density:         1.0,
			Entropy:         0.0,
			TokenEfficiency: 1.0,
		},
	}
}

var errJudgeDown = eris.New("judge unavailable")
