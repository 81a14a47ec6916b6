// Package shape implements multi-axis tensor shapes and views over the
// flat position space shared by predicates, literals, and clauses.
//
// What & Why:
//
//	A Shape is a vector of axis extents together with the flat size that
//	is their product; a predicate's ground atoms are addressed by a
//	canonical View over its Shape, where the last axis advances fastest.
//	Literal references into a predicate reindex that canonical view with
//	Permute (reorder axes) and Polymer (introduce dummy axes of stride
//	zero, or identify two axes by summing their strides), then call
//	Simplify to merge adjacent axes that iterate contiguously, shrinking
//	the number of counters a position Iter has to carry without changing
//	which positions it enumerates or in what order.
//
// Complexity:
//
//	Size/Rank/Offset are O(1). Position is O(rank). Permute/Polymer are
//	O(rank). Simplify is O(rank). Iter.Next is amortized O(1) and a full
//	walk over View.Size() positions is O(size).
package shape
