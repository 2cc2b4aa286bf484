package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konkred/valuation-cli/internal/valuation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "konkred.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleReport(t *testing.T, title string) *valuation.Report {
	t.Helper()
	engine := valuation.NewEngine(nil)
	rep, err := engine.Appraise(context.Background(), valuation.Request{PromptTitle: title}, valuation.MethodDLA)
	require.NoError(t, err)
	return rep
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	ctx := context.Background()
	orig := sampleReport(t, "Digest generator")

	require.NoError(t, st.SaveReport(ctx, orig))

	got, err := st.GetReport(ctx, orig.Watermark)
	require.NoError(t, err)

	assert.Equal(t, orig.Method, got.Method)
	assert.Equal(t, orig.PromptTitle, got.PromptTitle)
	assert.Equal(t, orig.Watermark, got.Watermark)
	assert.Equal(t, orig.Calculations, got.Calculations)
}

func TestStoreDuplicateWatermark(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	ctx := context.Background()
	rep := sampleReport(t, "dup")

	require.NoError(t, st.SaveReport(ctx, rep))
	err := st.SaveReport(ctx, rep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), rep.Watermark)
}

func TestStoreListReports(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	ctx := context.Background()

	var marks []string
	for i := 0; i < 3; i++ {
		rep := sampleReport(t, "batch")
		require.NoError(t, st.SaveReport(ctx, rep))
		marks = append(marks, rep.Watermark)
	}

	entries, err := st.ListReports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Contains(t, marks, e.Watermark)
		assert.Equal(t, "DLA", e.Method)
		assert.Equal(t, "batch", e.PromptTitle)
		assert.False(t, e.CreatedAt.IsZero())
	}

	limited, err := st.ListReports(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStoreGetReport_Missing(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	_, err := st.GetReport(context.Background(), "K-DLA-000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report with watermark")
}
