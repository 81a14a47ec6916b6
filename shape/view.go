package shape

import "fmt"

// stridedAxis pairs an axis extent with its stride in the flat position
// space. A stride of zero marks a dummy axis: every coordinate along it
// maps to the same position (used by Polymer to broadcast a literal over
// an axis it does not reference).
type stridedAxis struct {
	dim    int
	stride int
}

// View is a shape together with a stride and offset per axis, letting the
// same flat position space be walked in a reordered, broadcast, or
// partially-identified way without copying any underlying data.
type View struct {
	axes   []stridedAxis
	offset int
}

// Rank returns the number of axes.
func (v *View) Rank() int {
	return len(v.axes)
}

// Size returns the number of positions this view enumerates, the product
// of its axis extents.
func (v *View) Size() int {
	n := 1
	for _, a := range v.axes {
		n *= a.dim
	}
	return n
}

// Offset returns the view's base offset.
func (v *View) Offset() int {
	return v.offset
}

// Dim returns the extent of the given axis.
func (v *View) Dim(axis int) int {
	return v.axes[axis].dim
}

// Position returns the flat position of the given coordinates under this
// view's strides and offset. len(coords) must equal Rank.
func (v *View) Position(coords []int) int {
	if len(coords) != len(v.axes) {
		panic(fmt.Sprintf("shape: expected %d coordinates, got %d", len(v.axes), len(coords)))
	}
	n := v.offset
	for i, c := range coords {
		a := v.axes[i]
		if c < 0 || c >= a.dim {
			panic(fmt.Sprintf("shape: coordinate %d out of range [0,%d) at axis %d", c, a.dim, i))
		}
		n += c * a.stride
	}
	return n
}

// Shape returns the plain Shape of this view's axis extents, discarding
// strides and offset.
func (v *View) Shape() *Shape {
	dims := make([]int, len(v.axes))
	for i, a := range v.axes {
		dims[i] = a.dim
	}
	return New(dims...)
}

// Permute reorders this view's axes: the old axis i is placed at the new
// axis map[i]. map must be a permutation of [0,Rank).
func (v *View) Permute(mapTo []int) *View {
	if len(mapTo) != len(v.axes) {
		panic(fmt.Sprintf("shape: permutation map has length %d, want %d", len(mapTo), len(v.axes)))
	}
	out := make([]stridedAxis, len(v.axes))
	seen := make([]bool, len(v.axes))
	for i, x := range mapTo {
		if x < 0 || x >= len(v.axes) {
			panic(fmt.Sprintf("shape: permutation target %d out of range", x))
		}
		if seen[x] {
			panic(fmt.Sprintf("shape: permutation target %d used twice", x))
		}
		seen[x] = true
		out[x] = v.axes[i]
	}
	return &View{axes: out, offset: v.offset}
}

// Polymer reindexes this view against a new shape, introducing dummy
// axes (stride zero, for axes of target that no source axis maps to) and
// identifying axes (summing strides, when two or more source axes map to
// the same target axis). The old axis i is placed at the new axis
// map[i]; the extent of target axis map[i] must match this view's axis i.
func (v *View) Polymer(target *Shape, mapTo []int) *View {
	if len(mapTo) != len(v.axes) {
		panic(fmt.Sprintf("shape: polymer map has length %d, want %d", len(mapTo), len(v.axes)))
	}
	out := make([]stridedAxis, target.Rank())
	for i, d := range target.dims {
		out[i] = stridedAxis{dim: d, stride: 0}
	}
	for i, x := range mapTo {
		if x < 0 || x >= len(out) {
			panic(fmt.Sprintf("shape: polymer target %d out of range", x))
		}
		if v.axes[i].dim != out[x].dim {
			panic(fmt.Sprintf("shape: polymer axis %d has extent %d, target axis %d has extent %d", i, v.axes[i].dim, x, out[x].dim))
		}
		out[x].stride += v.axes[i].stride
	}
	return &View{axes: out, offset: v.offset}
}

// Simplify returns an equivalent view, possibly of lower rank, merging
// adjacent axes whose combined iteration is contiguous in stride. The
// multiset of positions enumerated by Iter is unchanged; only the number
// of counters needed to enumerate them shrinks.
//
// An empty axis (extent zero) after the first collapses the whole view to
// a single empty axis, since the view then enumerates no positions.
func (v *View) Simplify() *View {
	axes := make([]stridedAxis, len(v.axes))
	copy(axes, v.axes)
	if len(axes) == 0 {
		return &View{axes: axes, offset: v.offset}
	}

	tail := 0
	head := 1
	for head < len(axes) {
		if axes[head].dim == 0 {
			tail = 0
			axes[0] = stridedAxis{dim: 0, stride: 0}
			break
		}
		s := axes[head].dim * axes[head].stride
		if s == axes[tail].stride {
			axes[tail].dim *= axes[head].dim
			axes[tail].stride = axes[head].stride
		} else {
			tail++
			axes[tail] = axes[head]
		}
		head++
	}

	return &View{axes: axes[:tail+1], offset: v.offset}
}

// Iter returns an iterator over all positions this view enumerates, Size
// many in total, in the view's own axis order (last axis fastest).
// Calling Simplify before Iter reduces the iterator's per-step work.
func (v *View) Iter() *Iter {
	return newIter(v)
}
