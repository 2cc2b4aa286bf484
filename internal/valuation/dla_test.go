package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDLA_WorkedExample(t *testing.T) {
	t.Parallel()

	// 5000 chars at 40 wpm and $60/h: 1000 words, 25 manual minutes,
	// $25 gross labor value.
	calc := calculateDLA(Request{
		OutputCharCount:    fptr(5000),
		APILatencySeconds:  fptr(12.5),
		EditSessionSeconds: fptr(180),
		APICostUSD:         fptr(0.04),
		HumanWPM:           fptr(40),
		HumanReadingWPM:    fptr(250),
		HourlyWage:         fptr(60),
	})

	assert.InDelta(t, 25.0, calc.ManualMinutes, 1e-9)
	assert.InDelta(t, 25.0, calc.GrossLaborValue, 1e-9)
	assert.InDelta(t, 12.5/60, calc.WaitCost, 1e-9)
	assert.InDelta(t, 4.0, calc.ReadingCost, 1e-9)
	assert.InDelta(t, 3.0, calc.FixingCost, 1e-9)
	assert.InDelta(t, calc.WaitCost+calc.ReadingCost+calc.FixingCost+0.04, calc.HiddenFrictionCost, 1e-9)
	assert.InDelta(t, calc.GrossLaborValue-calc.HiddenFrictionCost, calc.TrueNetValue, 1e-9)
	assert.True(t, calc.IsProfitable)
	assert.InDelta(t, calc.TrueNetValue/calc.GrossLaborValue, calc.ArbitrageEfficiency, 1e-9)
}

func TestCalculateDLA_Defaults(t *testing.T) {
	t.Parallel()

	calc := calculateDLA(Request{})

	assert.InDelta(t, 5000.0, calc.Inputs.OutputCharCount, 1e-9)
	assert.InDelta(t, 60.0, calc.Inputs.HourlyWage, 1e-9)
	assert.InDelta(t, 25.0, calc.ManualMinutes, 1e-9) // 1000 words / 40 wpm
	assert.True(t, calc.IsProfitable)
}

func TestCalculateDLA_NetIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
	}{
		{"defaults", Request{}},
		{"cheap labor", Request{HourlyWage: fptr(12), HumanWPM: fptr(80)}},
		{"slow api", Request{APILatencySeconds: fptr(300), APICostUSD: fptr(2.5)}},
		{"tiny output", Request{OutputCharCount: fptr(50)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calc := calculateDLA(tt.req)
			friction := calc.WaitCost + calc.ReadingCost + calc.FixingCost + calc.Inputs.APICostUSD
			assert.InDelta(t, calc.GrossLaborValue-friction, calc.TrueNetValue, 1e-9)
		})
	}
}

func TestCalculateDLA_ExplicitZeroWage(t *testing.T) {
	t.Parallel()

	// A supplied wage of 0 must compute a zero-cost result, not fall
	// back to the default.
	calc := calculateDLA(Request{
		HourlyWage: fptr(0),
		APICostUSD: fptr(0.05),
	})

	assert.Zero(t, calc.GrossLaborValue)
	assert.InDelta(t, 0.05, calc.HiddenFrictionCost, 1e-9)
	assert.InDelta(t, -0.05, calc.TrueNetValue, 1e-9)
	assert.Zero(t, calc.ArbitrageEfficiency) // divide-by-zero guard
	assert.False(t, calc.IsProfitable)
}

func TestCalculateDLA_ZeroWPMGuard(t *testing.T) {
	t.Parallel()

	calc := calculateDLA(Request{HumanWPM: fptr(0), HumanReadingWPM: fptr(0)})

	assert.Zero(t, calc.ManualMinutes)
	assert.Zero(t, calc.GrossLaborValue)
	assert.Zero(t, calc.ReadingCost)
	assert.False(t, calc.IsProfitable)
}
