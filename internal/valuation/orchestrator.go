package valuation

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/konkred/valuation-cli/internal/judge"
)

// Engine is the orchestration entry point. It holds no state beyond
// the injected qualitative judge; every Run is a pure function of the
// request (plus the judge's verdicts), so a single Engine is safe for
// concurrent use.
type Engine struct {
	judge judge.Judge
}

// NewEngine creates an Engine. The judge may be nil for callers that
// only run the numeric methods; PVC and SCOPE then fail with a
// configuration error.
func NewEngine(j judge.Judge) *Engine {
	return &Engine{judge: j}
}

// Run is the engine's sole public surface: it validates the request,
// expands the mode, and returns one report per requested method in
// canonical order. Single-method modes return a one-element slice.
// Batch modes fan the independent calculators out concurrently and
// join fail-fast: if any branch errors, no partial results are
// returned.
func (e *Engine) Run(ctx context.Context, req Request, mode Mode) ([]Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	methods, err := mode.Methods()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	reports := make([]Report, len(methods))

	if len(methods) == 1 {
		rep, err := e.appraise(ctx, req, methods[0])
		if err != nil {
			return nil, err
		}
		reports[0] = *rep
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, m := range methods {
			g.Go(func() error {
				rep, err := e.appraise(gctx, req, m)
				if err != nil {
					return err
				}
				reports[i] = *rep
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	zap.L().Info("valuation complete",
		zap.String("mode", string(mode)),
		zap.Int("reports", len(reports)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return reports, nil
}

// Appraise runs exactly one method and returns its report.
func (e *Engine) Appraise(ctx context.Context, req Request, m Method) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return e.appraise(ctx, req, m)
}

// appraise dispatches to the method's calculator and assembles the
// report. The request is taken by value so concurrent branches never
// share mutable state.
func (e *Engine) appraise(ctx context.Context, req Request, m Method) (*Report, error) {
	var (
		calc Calculation
		err  error
	)
	switch m {
	case MethodDLA:
		calc = calculateDLA(req)
	case MethodEAVP:
		calc = calculateEAVP(req)
	case MethodPRICE:
		calc = calculatePRICE(req)
	case MethodVECTOR:
		calc = calculateVECTOR(req)
	case MethodPVC:
		calc, err = e.calculatePVC(ctx, req)
	case MethodSCOPE:
		calc, err = e.calculateSCOPE(ctx, req)
	default:
		return nil, eris.Errorf("valuation: unknown method %q", string(m))
	}
	if err != nil {
		return nil, eris.Wrapf(err, "valuation: %s", m)
	}

	rep := &Report{
		Method:       m,
		PromptTitle:  req.PromptTitle,
		InputPrompt:  req.InputPrompt,
		Calculations: calc,
		Timestamp:    time.Now().UTC(),
		Watermark:    newWatermark(m),
	}
	rep.Badges = EvaluateBadges(rep)
	return rep, nil
}
