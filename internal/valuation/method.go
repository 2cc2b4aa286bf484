// Package valuation implements the KONKRED valuation protocol engine:
// six deterministic methodologies that estimate the economic and
// qualitative value of a prompt, an orchestrator that runs them
// individually or as fail-fast parallel batches, and the report types
// consumed by presentation layers.
package valuation

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Method identifies one of the six valuation methodologies.
type Method string

const (
	MethodDLA    Method = "DLA"    // Displaced Labor Arbitrage
	MethodPVC    Method = "PVC"    // Prompt Value Certification
	MethodSCOPE  Method = "SCOPE"  // Semantic density audit
	MethodEAVP   Method = "EAVP"   // Empirical Audited Value Protocol
	MethodPRICE  Method = "PRICE"  // Asset pricing
	MethodVECTOR Method = "VECTOR" // Production viability vector
)

// CanonicalOrder returns all six methods in the fixed order batch
// results are emitted in, regardless of completion order.
func CanonicalOrder() []Method {
	return []Method{MethodDLA, MethodPVC, MethodSCOPE, MethodEAVP, MethodPRICE, MethodVECTOR}
}

// Mode selects what the orchestrator runs: a single method name,
// the CORE subset, or ALL six methods.
type Mode string

const (
	// ModeCORE runs the DLA, PVC, and SCOPE calculators.
	ModeCORE Mode = "CORE"
	// ModeALL runs all six calculators.
	ModeALL Mode = "ALL"
)

// ParseMode normalizes a user-supplied mode string. It accepts the six
// method names plus "CORE" and "ALL", case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := m.Methods(); err != nil {
		return "", err
	}
	return m, nil
}

// Methods expands a mode to the methods it runs, in canonical order.
func (m Mode) Methods() ([]Method, error) {
	switch m {
	case ModeALL:
		return CanonicalOrder(), nil
	case ModeCORE:
		return []Method{MethodDLA, MethodPVC, MethodSCOPE}, nil
	case Mode(MethodDLA), Mode(MethodPVC), Mode(MethodSCOPE),
		Mode(MethodEAVP), Mode(MethodPRICE), Mode(MethodVECTOR):
		return []Method{Method(m)}, nil
	}
	return nil, eris.Errorf("valuation: unknown mode %q", string(m))
}
