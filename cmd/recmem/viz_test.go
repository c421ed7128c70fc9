package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/recmem/recmem/memtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vizFixture(t *testing.T) *memtree.Tree {
	t.Helper()
	tree := memtree.New()
	require.NoError(t, tree.SetString("system.core.cpu", "arm64"))
	require.NoError(t, tree.SetString("system.core.memory", "16GB"))
	require.NoError(t, tree.SetString("user.prefs.theme", "dark"))
	return tree
}

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)
	out := renderTree(vizFixture(t), vizOptions{showValues: true})

	assert.Contains(out, "root")
	assert.Contains(out, "system")
	assert.Contains(out, `cpu = "arm64"`)
	assert.Contains(out, `theme = "dark"`)

	hidden := renderTree(vizFixture(t), vizOptions{showValues: false})
	assert.Contains(hidden, "cpu")
	assert.NotContains(hidden, "arm64")
}

func TestRenderTreeMaxDepth(t *testing.T) {
	assert := assert.New(t)
	out := renderTree(vizFixture(t), vizOptions{showValues: true, maxDepth: 1})

	assert.Contains(out, "system")
	assert.NotContains(out, "cpu")
}

func TestCompactView(t *testing.T) {
	assert := assert.New(t)
	out := compactView(vizFixture(t))

	// leaves only, sorted by path
	assert.Contains(out, `system.core.cpu`)
	assert.Contains(out, `"arm64"`)
	assert.NotContains(out, "root")
	lines := []string{"system.core.cpu", "system.core.memory", "user.prefs.theme"}
	last := -1
	for _, want := range lines {
		idx := strings.Index(out, want)
		require.GreaterOrEqual(t, idx, 0, "leaf %q missing", want)
		assert.Less(last, idx, "leaf %q out of order", want)
		last = idx
	}
}

func TestDepthHistogram(t *testing.T) {
	assert := assert.New(t)
	out := depthHistogram(vizFixture(t))

	assert.Contains(out, "depth  0")
	assert.Contains(out, "depth  3")
	assert.Contains(out, "(1 nodes)")
	assert.Contains(out, "(3 nodes)")
}

func TestTruncate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("short", truncate("short", 10))
	assert.Equal("0123456...", truncate("0123456789abcdef", 10))

	// multibyte values must cut on rune boundaries, never mid-sequence
	long := strings.Repeat("ü", 20)
	got := truncate(long, 10)
	assert.Equal(strings.Repeat("ü", 7)+"...", got)
	assert.True(utf8.ValidString(got))
	assert.Equal(strings.Repeat("ü", 10), truncate(strings.Repeat("ü", 10), 10))
}
