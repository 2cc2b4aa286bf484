package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePRICE_Defaults(t *testing.T) {
	t.Parallel()

	calc := calculatePRICE(Request{})

	assert.InDelta(t, 80.0, calc.HumanCost, 1e-9) // 60 min at $80/h
	assert.InDelta(t, 80.0/60*5, calc.ReviewCost, 1e-9)
	assert.InDelta(t, 0.05+80.0/60*5, calc.OperationalCost, 1e-9)
	assert.InDelta(t, (calc.HumanCost-calc.OperationalCost)*0.9, calc.NetRunSavings, 1e-9)
	assert.InDelta(t, calc.NetRunSavings*250, calc.TotalAssetValue, 1e-9)
	assert.InDelta(t, calc.TotalAssetValue*0.15, calc.FreelancePrice, 1e-9)
	assert.InDelta(t, calc.TotalAssetValue*0.02, calc.MarketplacePrice, 1e-9)
	assert.Equal(t, UseCaseAdHoc, calc.Inputs.UseCase)
	assert.Equal(t, "Core Logic", calc.Inputs.ValuedParameter)
}

func TestCalculatePRICE_UseCaseBenchmarkVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		useCase    UseCase
		wantVolume float64
	}{
		{"ad-hoc runs once", UseCaseAdHoc, 1},
		{"sop runs weekly", UseCaseSOP, 200},
		{"pipeline runs constantly", UseCasePipeline, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calc := calculatePRICE(Request{UseCase: tt.useCase})
			assert.InDelta(t, tt.wantVolume, calc.Inputs.YearlyVolume, 1e-9)
			assert.InDelta(t, calc.NetRunSavings*tt.wantVolume, calc.TotalAssetValue, 1e-9)
		})
	}
}

func TestCalculatePRICE_ExplicitVolumeBeatsBenchmark(t *testing.T) {
	t.Parallel()

	calc := calculatePRICE(Request{
		UseCase:      UseCasePipeline,
		YearlyVolume: fptr(12),
	})

	assert.InDelta(t, 12.0, calc.Inputs.YearlyVolume, 1e-9)
}

func TestCalculatePRICE_MultiplicativeCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
	}{
		{"zero volume", Request{YearlyVolume: fptr(0)}},
		{"zero reliability", Request{Reliability: fptr(0)}},
		{"zero weight", Request{ParameterWeight: fptr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calc := calculatePRICE(tt.req)
			assert.Zero(t, calc.TotalAssetValue)
			assert.Zero(t, calc.FreelancePrice)
			assert.Zero(t, calc.MarketplacePrice)
		})
	}
}

func TestCalculatePRICE_NegativeSavings(t *testing.T) {
	t.Parallel()

	// An expensive review cycle can make the AI path cost more than the
	// human it replaces; the asset value goes negative rather than being
	// floored.
	calc := calculatePRICE(Request{
		HumanTimeMinutes:  fptr(5),
		ReviewTimeMinutes: fptr(60),
	})

	assert.Less(t, calc.NetRunSavings, 0.0)
	assert.Less(t, calc.TotalAssetValue, 0.0)
}
