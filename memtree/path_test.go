package memtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePath(t *testing.T) {
	assert := assert.New(t)

	testValid := map[string]Path{
		"a":           {"a"},
		"a.b.c":       {"a", "b", "c"},
		"with spaces": {"with spaces"},
		"x.y.z":       {"x", "y", "z"},
	}
	for raw, expect := range testValid {
		p, err := ParsePath(raw)
		assert.NoError(err)
		assert.Equal(expect, p)
		assert.Equal(raw, p.String())
	}

	testInvalid := []string{
		"",
		".",
		"a.",
		".a",
		"a..b",
	}
	for _, raw := range testInvalid {
		_, err := ParsePath(raw)
		assert.Error(err, "expected parse failure: %q", raw)
	}
}

func TestPathValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Path{"a"}.Validate())
	assert.NoError(Path{"a", "b"}.Validate())
	assert.Error(Path{}.Validate())
	assert.Error(Path(nil).Validate())
	assert.Error(Path{"a", "", "c"}.Validate())
}

func TestMustParsePath(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Path{"a", "b"}, MustParsePath("a.b"))
	assert.Panics(func() { MustParsePath("") })
}
