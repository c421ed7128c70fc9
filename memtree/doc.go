/*
Package memtree implements an in-memory hierarchical key-value store: keys
are dot-delimited paths ("a.b.c") mapped onto a tree of nodes, each optionally
holding a value.

Writes auto-vivify intermediate segments, deletes sever whole subtrees, and a
full-tree walk backs value search, segment search, and shape statistics. Each
node keeps a back-reference to its parent, so any node can reconstruct its own
path without consulting the tree handle.

Stored values come from a closed data model (nil, bool, int64, float64,
string, arrays, string-keyed maps) with structural equality, so search works
across heterogeneous values and an exported tree survives a JSON round trip.

The package is an educational data structure, not a database: no persistence,
no internal locking, no indexing. Presentation concerns (REPL, rendering) live
with the callers, on top of the exported read/write/search/export surface.
*/
package memtree
