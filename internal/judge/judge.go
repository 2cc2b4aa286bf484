// Package judge adapts an external text-judgment service into the
// narrow scorer interface consumed by the PVC and SCOPE calculators.
// The adapter owns throttling; the engine treats any adapter error as
// terminal for that calculation and never retries.
package judge

import "context"

// PVCScores is the structural-audit rubric result: seven 0-4 integer
// dimensions plus a free-text rationale. Ambiguity and Risk are
// inverted (higher is worse). The JSON keys match the rubric's output
// contract.
type PVCScores struct {
	GoalClarity        int    `json:"G_r"`
	ContextSufficiency int    `json:"C_r"`
	Specificity        int    `json:"S_r"`
	Structure          int    `json:"D_r"`
	Feasibility        int    `json:"F_r"`
	Ambiguity          int    `json:"A_r"`
	Risk               int    `json:"R_r"`
	Reasoning          string `json:"reasoning,omitempty"`
}

// ScopeVariables is the semantic-shape rubric result: five fractional
// dimensions in [0, 1]. Entropy is inverted (higher is worse).
type ScopeVariables struct {
	Structure       float64 `json:"S"`
	Hardness        float64 `json:"H"`
	Density         float64 `json:"D"`
	Entropy         float64 `json:"E"`
	TokenEfficiency float64 `json:"Teff"`
}

// Judge scores prompt text against one of the two fixed rubrics. The
// two typed methods are the compile-checked rendering of a single
// judge(prompt, rubricID) call.
type Judge interface {
	ScorePVC(ctx context.Context, prompt string) (*PVCScores, error)
	ScoreSCOPE(ctx context.Context, prompt string) (*ScopeVariables, error)
}
