package observability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/isaw"
	"github.com/aretw0/isaw/pkg/domain"
	"github.com/aretw0/isaw/pkg/observability"
)

func TestMetrics_CountEngineActivity(t *testing.T) {
	m := observability.NewMetrics()
	eng := isaw.New(isaw.WithHooks(m.Hooks()))

	f := domain.FilterConfig{Pattern: domain.Literal("b")}
	stream, err := eng.GeneratePermutations("abc", domain.Exact(2), 2, f)
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "ba"}, stream.Collect())

	// ab, ac (rejected), ba -> cap.
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)

	assert.Equal(t, 3, testutil.CollectAndCount(m.Registry(), "isaw_candidates_total", "isaw_emitted_total", "isaw_cap_reached_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "isaw_rejected_total"))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	hooks.OnCandidate(domain.ModeWord, "tea")
	hooks.OnReject(domain.ModeWord, domain.StageDictionary, "tea")

	path := filepath.Join(t.TempDir(), "isaw.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `isaw_candidates_total{mode="word"} 1`)
	assert.Contains(t, string(data), `isaw_rejected_total{mode="word",stage="dictionary"} 1`)
}
