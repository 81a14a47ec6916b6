// Package buffer implements the packed one-bit and two-bit vectors the
// solver uses for ground-atom assignments and clause evaluation buffers.
//
// What & Why:
//
//	Buffer1 packs one-bit cells 32 to a word; Buffer2 packs two-bit cells
//	16 to a word. Both support whole-buffer and ranged fills using the
//	four broadcast constants (0x00000000, 0x55555555, 0xaaaaaaaa,
//	0xffffffff) instead of a per-cell loop, and an Append that grows a
//	buffer in place while preserving every previously written cell.
//	Buffer2 additionally has Apply, the only operation that reads two
//	buffers at once: it folds another buffer's cells (visited through an
//	external position iterator) into the receiver with a bitops.Op222.
//
// Contract failures (out-of-range positions, malformed values, a position
// iterator that does not produce exactly as many positions as the
// receiver's length) panic rather than return an error: these buffers sit
// on the hottest path in the engine (every clause evaluation touches
// every literal's buffer), and every call site constructs its iterators
// and lengths to match by the invariants documented in package engine, so
// a mismatch here is always an engine bug, never a caller input error.
//
// Complexity:
//
//	Get/Set are O(1). Fill is O(words). FillRange is O(1) amortized per
//	boundary word plus O(middle words) for the interior. Append is
//	O(new words). Apply is O(len).
package buffer
