package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/recmem/recmem/memtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*replSession, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &replSession{tree: memtree.New(), out: out}, out
}

func TestParseReplValue(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(float64(42), parseReplValue("42"))
	assert.Equal(true, parseReplValue("true"))
	assert.Nil(parseReplValue("null"))
	assert.Equal("plain words", parseReplValue("plain words"))
	assert.Equal(map[string]any{"k": float64(1)}, parseReplValue(`{"k": 1}`))
	assert.Equal("quoted", parseReplValue(`"quoted"`))
}

func TestFindReplCommand(t *testing.T) {
	assert := assert.New(t)

	require.NotNil(t, findReplCommand("set"))
	assert.Equal("delete", findReplCommand("del").name)
	assert.Equal("exit", findReplCommand("quit").name)
	assert.Nil(findReplCommand("bogus"))
}

func TestReplSetGetDelete(t *testing.T) {
	assert := assert.New(t)
	sess, out := newTestSession()

	require.NoError(t, replSet(sess, []string{"a.b", "hello", "world"}))
	assert.Contains(out.String(), `set a.b = "hello world"`)

	out.Reset()
	require.NoError(t, replGet(sess, []string{"a.b"}))
	assert.Contains(out.String(), `a.b = "hello world"`)

	out.Reset()
	require.NoError(t, replGet(sess, []string{"a.missing"}))
	assert.Contains(out.String(), "path not found")

	out.Reset()
	require.NoError(t, replDelete(sess, []string{"a.b"}))
	assert.Contains(out.String(), "deleted a.b")
	_, ok := sess.tree.GetString("a.b")
	assert.False(ok)
}

func TestReplSetUsageErrors(t *testing.T) {
	assert := assert.New(t)
	sess, _ := newTestSession()

	assert.Error(replSet(sess, []string{"onlypath"}))
	assert.Error(replGet(sess, nil))
	assert.Error(replDelete(sess, nil))
	assert.Error(replSet(sess, []string{"bad..path", "v"}))
}

func TestReplSearchCommands(t *testing.T) {
	assert := assert.New(t)
	sess, out := newTestSession()

	require.NoError(t, sess.tree.SetString("a.x", "target"))
	require.NoError(t, sess.tree.SetString("b.x", "target"))

	require.NoError(t, replSearch(sess, []string{"target"}))
	assert.Contains(out.String(), "found 2 result(s)")
	assert.Contains(out.String(), "a.x")

	out.Reset()
	require.NoError(t, replSearchKey(sess, []string{"x"}))
	assert.Contains(out.String(), `found 2 path(s) containing "x"`)
}

func TestReplExportLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)
	sess, out := newTestSession()

	require.NoError(t, sess.tree.SetString("cfg.name", "demo"))
	fp := t.TempDir() + "/export.json"
	require.NoError(t, replExport(sess, []string{fp}))
	assert.Contains(out.String(), "exported to")

	out.Reset()
	require.NoError(t, replClear(sess, nil))
	_, ok := sess.tree.GetString("cfg.name")
	require.False(t, ok)

	require.NoError(t, replLoad(sess, []string{fp}))
	v, ok := sess.tree.GetString("cfg.name")
	assert.True(ok)
	assert.Equal("demo", v)
}

func TestPrintStats(t *testing.T) {
	assert := assert.New(t)
	out := &bytes.Buffer{}

	printStats(out, memtree.Stats{TotalNodes: 5, MaxDepth: 2, DirectChildren: 3})
	assert.Contains(out.String(), "total nodes:     5")
	assert.Contains(out.String(), "maximum depth:   2")
	assert.Contains(out.String(), "direct children: 3")
	assert.Contains(out.String(), "root has value:  false")
}

func TestReplHelpListsEveryCommand(t *testing.T) {
	assert := assert.New(t)
	sess, out := newTestSession()

	require.NoError(t, replHelp(sess, nil))
	for _, cmd := range replCommands {
		assert.True(strings.Contains(out.String(), cmd.name), "help missing %q", cmd.name)
	}
}
