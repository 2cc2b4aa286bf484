package judge

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/konkred/valuation-cli/pkg/anthropic"
)

// auditTemperature keeps rubric scoring near-deterministic.
const auditTemperature = 0.1

// Claude scores prompts against the fixed rubrics using the Anthropic
// message API. A token-bucket limiter throttles outbound calls; parse
// failures are terminal, never retried.
type Claude struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
}

// NewClaude creates a Claude judge. requestsPerSecond <= 0 disables
// throttling.
func NewClaude(client anthropic.Client, model string, maxTokens int64, requestsPerSecond float64) *Claude {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Claude{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		limiter:   limiter,
	}
}

// ScorePVC audits the prompt against the structural rubric.
func (c *Claude) ScorePVC(ctx context.Context, prompt string) (*PVCScores, error) {
	raw, err := c.audit(ctx, pvcRubric, prompt, "pvc")
	if err != nil {
		return nil, err
	}
	var scores PVCScores
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, eris.Wrap(err, "judge: parse PVC judgment")
	}
	return &scores, nil
}

// ScoreSCOPE audits the prompt against the semantic-shape rubric.
func (c *Claude) ScoreSCOPE(ctx context.Context, prompt string) (*ScopeVariables, error) {
	raw, err := c.audit(ctx, scopeRubric, prompt, "scope")
	if err != nil {
		return nil, err
	}
	var vars ScopeVariables
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, eris.Wrap(err, "judge: parse SCOPE judgment")
	}
	return &vars, nil
}

// audit runs one rubric call and returns the raw JSON payload.
func (c *Claude) audit(ctx context.Context, rubric, prompt, phase string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "judge: rate limit wait")
		}
	}

	temp := auditTemperature
	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		System:      rubric,
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return nil, eris.Wrap(err, "judge: audit call")
	}
	resp.Usage.LogUsage(c.model, "judge_"+phase)

	text := stripFences(resp.Text())
	if text == "" {
		return nil, eris.New("judge: empty judgment response")
	}
	return []byte(text), nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
