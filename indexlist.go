package graphblas

// IndexListKind distinguishes the three ways a dimension of a submatrix
// operation can be selected: an explicit index list, the whole dimension
// (GrB_ALL), or a strided range (start:stop:step, the "colon" form).
type IndexListKind int

const (
	IndexListExplicit IndexListKind = iota
	IndexListAll
	IndexListColon
)

// IndexList selects a subset of a single dimension's indices for
// Subassign/Assign/Extract: a 3-variant sum type covering an explicit
// index slice, the whole dimension, and strided ranges.
type IndexList struct {
	kind             IndexListKind
	explicit         []int
	start, stop, inc int // for IndexListColon; stop is exclusive
}

// Indices returns an explicit index list.
func Indices(idx []int) IndexList {
	return IndexList{kind: IndexListExplicit, explicit: idx}
}

// All returns the "whole dimension" index list, resolved against dim
// when Resolve is called.
func All() IndexList {
	return IndexList{kind: IndexListAll}
}

// Colon returns a strided range start:stop:step (stop exclusive), the
// generalization of the common row:row+1 and 0:n:1 idioms.
func Colon(start, stop, step int) IndexList {
	return IndexList{kind: IndexListColon, start: start, stop: stop, inc: step}
}

// Resolve expands the index list into a concrete slice of indices given
// the size of the dimension it addresses.
func (il IndexList) Resolve(dim int) []int {
	switch il.kind {
	case IndexListAll:
		out := make([]int, dim)
		for i := range out {
			out[i] = i
		}
		return out
	case IndexListColon:
		if il.inc == 0 {
			return nil
		}
		var out []int
		if il.inc > 0 {
			for v := il.start; v < il.stop; v += il.inc {
				out = append(out, v)
			}
		} else {
			for v := il.start; v > il.stop; v += il.inc {
				out = append(out, v)
			}
		}
		return out
	default:
		return il.explicit
	}
}

// Len returns the resolved length of the index list against dim.
func (il IndexList) Len(dim int) int { return len(il.Resolve(dim)) }
