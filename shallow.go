package graphblas

// shallowSlice wraps a backing slice together with a flag recording
// whether the slice is borrowed (shallow) from another matrix or
// external source. A shallow slice is a borrow with a lifetime that
// cannot outlive its owner: it must never be freed or mutated in place
// by the borrower, so growing it always copies first.
type shallowSlice[T any] struct {
	data    []T
	shallow bool
}

func owned[T any](data []T) shallowSlice[T] {
	return shallowSlice[T]{data: data}
}

func borrowed[T any](data []T) shallowSlice[T] {
	return shallowSlice[T]{data: data, shallow: true}
}

// ensureOwned returns a slice that is safe to mutate in place, copying the
// backing array first if it is currently shallow. The receiver's shallow
// flag is cleared as a result.
func (s *shallowSlice[T]) ensureOwned() {
	if !s.shallow {
		return
	}
	cp := make([]T, len(s.data))
	copy(cp, s.data)
	s.data = cp
	s.shallow = false
}

// grow appends v to the slice, copy-on-write if shallow, and returns the
// new length.
func (s *shallowSlice[T]) grow(v T) int {
	if s.shallow {
		s.ensureOwned()
	}
	s.data = append(s.data, v)
	return len(s.data)
}

// set mutates data[i] = v, copy-on-write if shallow. Panics if i is out
// of range.
func (s *shallowSlice[T]) set(i int, v T) {
	if s.shallow {
		s.ensureOwned()
	}
	s.data[i] = v
}

func (s *shallowSlice[T]) len() int { return len(s.data) }
