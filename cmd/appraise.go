package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konkred/valuation-cli/internal/valuation"
)

var appraiseCmd = &cobra.Command{
	Use:   "appraise",
	Short: "Run valuation methods against a prompt",
	Long: `Run one or more valuation methodologies against a prompt and its
telemetry.

Methods:
  DLA     Displaced Labor Arbitrage — manual-labor value minus friction
  PVC     Prompt Value Certification — external structural audit, 0-100
  SCOPE   Semantic density audit — Prompt-Value-Index
  EAVP    Empirical Audited Value — verified minutes saved in money terms
  PRICE   Asset pricing — total yearly asset value and price points
  VECTOR  Viability vector — reliability coefficient and net utility

Modes CORE (DLA+PVC+SCOPE) and ALL run methods concurrently and fail as
a whole if any method fails. PVC and SCOPE need an Anthropic API key.

Telemetry flags left unset fall back to documented defaults; a flag
explicitly set to 0 is honored as zero.

Examples:
  # Numeric-only appraisal with explicit telemetry
  appraise --method DLA --output-char-count 5000 --hourly-wage 60

  # Full audit of a prompt file, archived locally
  appraise --method ALL --prompt-file prompt.txt --save

  # Asset pricing for an automated pipeline
  appraise --method PRICE --use-case Pipeline --reliability 0.95`,
	RunE: runAppraise,
}

func init() {
	f := appraiseCmd.Flags()
	f.String("method", "CORE", "method to run: DLA, PVC, SCOPE, EAVP, PRICE, VECTOR, CORE, or ALL")
	f.String("title", "", "prompt title for the report header")
	f.String("prompt", "", "prompt text (PVC/SCOPE)")
	f.String("prompt-file", "", "read prompt text from file ('-' for stdin)")

	// DLA telemetry.
	f.Float64("output-char-count", 0, "DLA: output length in characters")
	f.Float64("api-latency-seconds", 0, "DLA: API latency in seconds")
	f.Float64("edit-session-seconds", 0, "DLA: human edit/fix time in seconds")
	f.Float64("api-cost-usd", 0, "DLA: raw API cost per run in USD")
	f.Float64("human-wpm", 0, "DLA: human typing speed in words/min")
	f.Float64("human-reading-wpm", 0, "DLA: human reading speed in words/min")
	f.Float64("hourly-wage", 0, "DLA: human hourly wage in USD")

	// EAVP telemetry.
	f.Float64("output-chars", 0, "EAVP: output length in characters")
	f.Float64("user-wpm", 0, "EAVP: user typing speed in words/min")
	f.Float64("edit-time-minutes", 0, "EAVP: manual edit time in minutes")
	f.Int("regenerations", 0, "EAVP: number of regenerations")
	f.Float64("market-rate", 0, "EAVP: market hourly rate in USD")

	// PRICE telemetry.
	f.Float64("human-time-minutes", 0, "PRICE: human task time in minutes")
	f.Float64("human-hourly-rate", 0, "PRICE: human hourly rate in USD")
	f.Float64("review-time-minutes", 0, "PRICE: review time per run in minutes")
	f.Float64("token-cost", 0, "PRICE: token/API cost per run in USD")
	f.Float64("reliability", 0, "PRICE: reliability fraction in [0,1]")
	f.Float64("yearly-volume", 0, "PRICE: runs per year")
	f.String("use-case", "", "PRICE: use case (Ad-hoc, SOP, Pipeline)")
	f.String("valued-parameter", "", "PRICE: label of the valued parameter")
	f.Float64("parameter-weight", 0, "PRICE: parameter weight multiplier")

	// VECTOR telemetry.
	f.Int("score-constraints", 0, "VECTOR: constraint-hardness score 0-5")
	f.Int("score-context", 0, "VECTOR: context score 0-5")
	f.Int("score-feasibility", 0, "VECTOR: feasibility score 0-5")
	f.Int("score-safety", 0, "VECTOR: safety/risk score 0-5 (higher is worse)")
	f.Float64("vector-hourly-rate", 0, "VECTOR: human hourly rate in USD")
	f.Float64("time-saved-minutes", 0, "VECTOR: time saved per run in minutes")
	f.Float64("annual-volume", 0, "VECTOR: runs per year")
	f.Float64("api-cost-per-run", 0, "VECTOR: API cost per run in USD")

	f.String("format", "table", "output format: table or json")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "archive reports in the local store")

	rootCmd.AddCommand(appraiseCmd)
}

func runAppraise(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	methodStr, _ := cmd.Flags().GetString("method")
	mode, err := valuation.ParseMode(methodStr)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	if modeNeedsScorer(mode) {
		if err := cfg.RequireScorer(); err != nil {
			return err
		}
	}

	log := zap.L().With(zap.String("command", "appraise"), zap.String("mode", string(mode)))
	log.Debug("running valuation")

	engine := newEngine()
	reports, err := engine.Run(ctx, req, mode)
	if err != nil {
		return eris.Wrap(err, "appraise")
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		for i := range reports {
			if err := st.SaveReport(ctx, &reports[i]); err != nil {
				return err
			}
		}
		log.Info("reports archived", zap.Int("count", len(reports)))
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "appraise: create %s", path)
		}
		defer file.Close() //nolint:errcheck
		out = file
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(reports), "appraise: encode reports")
	}
	formatReports(out, reports)
	return nil
}

// requestFromFlags assembles the valuation request, mapping flag
// presence onto the engine's omitted-vs-zero pointer semantics.
func requestFromFlags(cmd *cobra.Command) (valuation.Request, error) {
	req := valuation.Request{
		OutputCharCount:    floatFlag(cmd, "output-char-count"),
		APILatencySeconds:  floatFlag(cmd, "api-latency-seconds"),
		EditSessionSeconds: floatFlag(cmd, "edit-session-seconds"),
		APICostUSD:         floatFlag(cmd, "api-cost-usd"),
		HumanWPM:           floatFlag(cmd, "human-wpm"),
		HumanReadingWPM:    floatFlag(cmd, "human-reading-wpm"),
		HourlyWage:         floatFlag(cmd, "hourly-wage"),
		OutputChars:        floatFlag(cmd, "output-chars"),
		UserWPM:            floatFlag(cmd, "user-wpm"),
		EditTimeMinutes:    floatFlag(cmd, "edit-time-minutes"),
		Regenerations:      intFlag(cmd, "regenerations"),
		MarketRate:         floatFlag(cmd, "market-rate"),
		HumanTimeMinutes:   floatFlag(cmd, "human-time-minutes"),
		HumanHourlyRate:    floatFlag(cmd, "human-hourly-rate"),
		ReviewTimeMinutes:  floatFlag(cmd, "review-time-minutes"),
		TokenCost:          floatFlag(cmd, "token-cost"),
		Reliability:        floatFlag(cmd, "reliability"),
		YearlyVolume:       floatFlag(cmd, "yearly-volume"),
		ParameterWeight:    floatFlag(cmd, "parameter-weight"),
		ScoreConstraints:   intFlag(cmd, "score-constraints"),
		ScoreContext:       intFlag(cmd, "score-context"),
		ScoreFeasibility:   intFlag(cmd, "score-feasibility"),
		ScoreSafety:        intFlag(cmd, "score-safety"),
		VectorHourlyRate:   floatFlag(cmd, "vector-hourly-rate"),
		TimeSavedMinutes:   floatFlag(cmd, "time-saved-minutes"),
		AnnualVolume:       floatFlag(cmd, "annual-volume"),
		APICostPerRun:      floatFlag(cmd, "api-cost-per-run"),
	}

	req.PromptTitle, _ = cmd.Flags().GetString("title")
	if uc, _ := cmd.Flags().GetString("use-case"); uc != "" {
		req.UseCase = valuation.UseCase(uc)
	}
	req.ValuedParameter, _ = cmd.Flags().GetString("valued-parameter")

	prompt, _ := cmd.Flags().GetString("prompt")
	if path, _ := cmd.Flags().GetString("prompt-file"); path != "" {
		var (
			data []byte
			err  error
		)
		if path == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return valuation.Request{}, eris.Wrapf(err, "appraise: read prompt from %s", path)
		}
		prompt = string(data)
	}
	req.InputPrompt = prompt

	return req, nil
}

// floatFlag returns the flag value only when the user set it, so unset
// flags resolve to documented defaults downstream.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// intFlag is floatFlag for integer telemetry.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// modeNeedsScorer reports whether the mode includes a composite method.
func modeNeedsScorer(mode valuation.Mode) bool {
	methods, err := mode.Methods()
	if err != nil {
		return false
	}
	for _, m := range methods {
		if m == valuation.MethodPVC || m == valuation.MethodSCOPE {
			return true
		}
	}
	return false
}

// formatReports renders a one-line summary per report.
func formatReports(w io.Writer, reports []valuation.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tHEADLINE\tVERDICT\tBADGES\tWATERMARK")
	for i := range reports {
		r := &reports[i]
		headline, verdict := summarize(r)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Method, headline, verdict, badgeNames(r), r.Watermark)
	}
	tw.Flush() //nolint:errcheck
}

// summarize picks the headline metric and verdict for one report.
func summarize(r *valuation.Report) (headline, verdict string) {
	switch c := r.Calculations.(type) {
	case valuation.DLACalculation:
		verdict = "NOT PROFITABLE"
		if c.IsProfitable {
			verdict = "PROFITABLE"
		}
		return fmt.Sprintf("net $%.2f/run", c.TrueNetValue), verdict
	case valuation.PVCCalculation:
		return fmt.Sprintf("score %.1f/100", c.FinalScore), fmt.Sprintf("tokens %d", c.TokenCount)
	case valuation.SCOPECalculation:
		return fmt.Sprintf("PVI %.2f", c.PVI), string(c.Tier)
	case valuation.EAVPCalculation:
		return fmt.Sprintf("audited $%.2f", c.AuditedValue),
			fmt.Sprintf("%.1f min saved", c.NetMinutesSaved)
	case valuation.PRICECalculation:
		return fmt.Sprintf("TAV $%.2f", c.TotalAssetValue),
			fmt.Sprintf("freelance $%.2f", c.FreelancePrice)
	case valuation.VECTORCalculation:
		return fmt.Sprintf("Q %.3f, annual $%.2f", c.Q, c.TotalAnnualValue), string(c.Status)
	}
	return "", ""
}

// badgeNames joins earned badge names for table display.
func badgeNames(r *valuation.Report) string {
	if len(r.Badges) == 0 {
		return "-"
	}
	names := make([]string, len(r.Badges))
	for i, b := range r.Badges {
		names[i] = b.Name
	}
	return strings.Join(names, ", ")
}
