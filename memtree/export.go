package memtree

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Record is the nested interchange shape for an exported tree. Value is a
// pointer so that an explicitly stored nil ("value": null) stays distinct
// from an absent value (field omitted) across a JSON round trip.
type Record struct {
	Value    *any               `json:"value,omitempty"`
	Children map[string]*Record `json:"children,omitempty"`
}

// Export renders the whole tree as nested records, one per node, rooted at
// the record for the root node itself.
func (t *Tree) Export() *Record {
	return exportNode(t.root)
}

func exportNode(n *Node) *Record {
	rec := &Record{}
	if v, ok := n.Value(); ok {
		rec.Value = &v
	}
	if children := n.Children(); len(children) > 0 {
		rec.Children = make(map[string]*Record, len(children))
		for _, c := range children {
			rec.Children[c.Name()] = exportNode(c)
		}
	}
	return rec
}

// UnmarshalJSON keeps an explicit "value": null distinct from a missing value
// field; plain struct decoding would collapse both into a nil pointer.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw struct {
		Value    json.RawMessage    `json:"value"`
		Children map[string]*Record `json:"children"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Value = nil
	if raw.Value != nil {
		var v any
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return err
		}
		r.Value = &v
	}
	r.Children = raw.Children
	return nil
}

// ExportJSON is Export serialized as indented JSON.
func (t *Tree) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(t.Export(), "", "  ")
}

// Import reconstructs a tree from an exported record. Values are normalized
// on the way in, so a record produced by Export (or parsed from its JSON)
// rebuilds an equivalent tree. Children are inserted in sorted name order,
// since the record's child mapping carries no order of its own.
func Import(rec *Record) (*Tree, error) {
	t := New()
	if err := importNode(t.root, rec); err != nil {
		return nil, err
	}
	return t, nil
}

// ImportJSON parses an exported JSON document and rebuilds the tree.
func ImportJSON(b []byte) (*Tree, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("parse export document: %w", err)
	}
	return Import(&rec)
}

func importNode(n *Node, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("export document contains a null record")
	}
	if rec.Value != nil {
		v, err := NormalizeValue(*rec.Value)
		if err != nil {
			return err
		}
		n.setValue(v)
	}
	names := make([]string, 0, len(rec.Children))
	for name := range rec.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("export document contains an empty segment name")
		}
		if err := importNode(n.child(name), rec.Children[name]); err != nil {
			return err
		}
	}
	return nil
}
