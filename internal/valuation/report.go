package valuation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/konkred/valuation-cli/internal/badge"
)

// Report is the outcome of one calculator run: the method tag, the
// echoed prompt identity, the method's calculation record, badges
// earned, and a fresh watermark. Everything but the watermark and
// timestamp is fully determined by the inputs.
type Report struct {
	Method       Method        `json:"method"`
	PromptTitle  string        `json:"prompt_title,omitempty"`
	InputPrompt  string        `json:"input_prompt,omitempty"`
	Calculations Calculation   `json:"calculations"`
	Badges       []badge.Badge `json:"badges,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
	Watermark    string        `json:"watermark"`
}

// UnmarshalJSON decodes the calculations field into the concrete shape
// selected by the method tag.
func (r *Report) UnmarshalJSON(data []byte) error {
	type alias Report
	aux := struct {
		*alias
		Calculations json.RawMessage `json:"calculations"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return eris.Wrap(err, "valuation: decode report")
	}

	var (
		calc Calculation
		err  error
	)
	switch r.Method {
	case MethodDLA:
		var c DLACalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	case MethodPVC:
		var c PVCCalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	case MethodSCOPE:
		var c SCOPECalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	case MethodEAVP:
		var c EAVPCalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	case MethodPRICE:
		var c PRICECalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	case MethodVECTOR:
		var c VECTORCalculation
		err = json.Unmarshal(aux.Calculations, &c)
		calc = c
	default:
		return eris.Errorf("valuation: unknown report method %q", string(r.Method))
	}
	if err != nil {
		return eris.Wrapf(err, "valuation: decode %s calculations", r.Method)
	}
	r.Calculations = calc
	return nil
}

// newWatermark mints the opaque per-report identifier, e.g.
// "K-DLA-3F09A1". Not used in any calculation.
func newWatermark(m Method) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("K-%s-%s", m, id)
}
