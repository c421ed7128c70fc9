package memtree

import (
	"errors"
	"strings"
)

// Path identifies a node relative to the tree root, as an ordered sequence of
// segment labels. The root itself is addressed by the empty path, which the
// public tree API never accepts.
type Path []string

// ParsePath splits a dot-delimited path string ("a.b.c") into a Path.
//
// Always use [ParsePath] instead of splitting strings directly, especially
// when working with input: it rejects empty paths and empty segments, which
// are contract violations for every tree operation.
func ParsePath(raw string) (Path, error) {
	if raw == "" {
		return nil, errors.New("expected path, got empty string")
	}
	segments := strings.Split(raw, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, errors.New("path contains an empty segment")
		}
	}
	return Path(segments), nil
}

// MustParsePath is a convenience for static path literals; it panics on
// invalid input.
func MustParsePath(raw string) Path {
	p, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Validate checks a pre-split path for the same constraints ParsePath
// enforces on strings.
func (p Path) Validate() error {
	if len(p) == 0 {
		return errors.New("empty path")
	}
	for _, seg := range p {
		if seg == "" {
			return errors.New("path contains an empty segment")
		}
	}
	return nil
}
