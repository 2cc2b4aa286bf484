package judge

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konkred/valuation-cli/pkg/anthropic"
)

// fakeClient records the last request and returns a canned response.
type fakeClient struct {
	lastReq anthropic.MessageRequest
	text    string
	err     error
}

func (f *fakeClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.text}},
	}, nil
}

const pvcJudgmentJSON = `{"G_r":4,"C_r":3,"S_r":4,"D_r":2,"F_r":4,"A_r":1,"R_r":0,"reasoning":"well-scoped"}`

func TestClaudeScorePVC(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: pvcJudgmentJSON}
	c := NewClaude(client, "claude-haiku-4-5-20251001", 1024, 0)

	scores, err := c.ScorePVC(context.Background(), "Summarize the attached report")
	require.NoError(t, err)

	assert.Equal(t, 4, scores.GoalClarity)
	assert.Equal(t, 2, scores.Structure)
	assert.Equal(t, 0, scores.Risk)
	assert.Equal(t, "well-scoped", scores.Reasoning)

	// Rubric goes in the system slot, the audited prompt as the user turn.
	assert.Equal(t, pvcRubric, client.lastReq.System)
	require.Len(t, client.lastReq.Messages, 1)
	assert.Equal(t, "user", client.lastReq.Messages[0].Role)
	assert.Equal(t, "Summarize the attached report", client.lastReq.Messages[0].Content)
	require.NotNil(t, client.lastReq.Temperature)
	assert.InDelta(t, 0.1, *client.lastReq.Temperature, 1e-9)
}

func TestClaudeScorePVC_StripsFences(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: "```json\n" + pvcJudgmentJSON + "\n```"}
	c := NewClaude(client, "m", 0, 0)

	scores, err := c.ScorePVC(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, 4, scores.GoalClarity)
}

func TestClaudeScoreSCOPE(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: `{"S":0.9,"H":0.7,"D":0.8,"E":0.1,"Teff":0.95}`}
	c := NewClaude(client, "m", 1024, 0)

	vars, err := c.ScoreSCOPE(context.Background(), "prompt")
	require.NoError(t, err)

	assert.InDelta(t, 0.9, vars.Structure, 1e-9)
	assert.InDelta(t, 0.7, vars.Hardness, 1e-9)
	assert.InDelta(t, 0.1, vars.Entropy, 1e-9)
	assert.InDelta(t, 0.95, vars.TokenEfficiency, 1e-9)
	assert.Equal(t, scopeRubric, client.lastReq.System)
}

func TestClaudeAudit_ParseFailureIsTerminal(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: "I cannot score this prompt."}
	c := NewClaude(client, "m", 1024, 0)

	_, err := c.ScorePVC(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse PVC judgment")
}

func TestClaudeAudit_EmptyResponse(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: "   "}
	c := NewClaude(client, "m", 1024, 0)

	_, err := c.ScoreSCOPE(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty judgment")
}

func TestClaudeAudit_APIError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: eris.New("overloaded")}
	c := NewClaude(client, "m", 1024, 0)

	_, err := c.ScorePVC(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit call")
	assert.Contains(t, err.Error(), "overloaded")
}

func TestNewClaude_MaxTokensFloor(t *testing.T) {
	t.Parallel()

	client := &fakeClient{text: pvcJudgmentJSON}
	c := NewClaude(client, "m", 0, 0)

	_, err := c.ScorePVC(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), client.lastReq.MaxTokens)
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}
