// File: nullable.go
// Title: Nullable Vectors
// Description: A homogeneous vector of values with a validity bitmap. Every
//              vectorised clock and calendar operation goes through Map or
//              Map2 here, so null propagation and length recycling are
//              defined once: a null input element always yields a null
//              output element and never reaches the element function.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package nullable

import (
	"github.com/bits-and-blooms/bitset"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Vector is an immutable sequence of T where any element may be null.
// The zero value is an empty vector.
type Vector[T any] struct {
	values []T
	nulls  *bitset.BitSet // nil when no element is null
}

// Of returns a vector without nulls. The slice is copied.
func Of[T any](values ...T) Vector[T] {
	return Vector[T]{values: append([]T(nil), values...)}
}

// New returns a vector from values and a parallel null mask. A nil mask
// means no nulls; otherwise it must have the same length as values.
func New[T any](values []T, null []bool) Vector[T] {
	v := Vector[T]{values: append([]T(nil), values...)}
	for i, n := range null {
		if n && i < len(values) {
			v.setNull(i)
		}
	}
	return v
}

// Nulls returns a vector of n null elements.
func Nulls[T any](n int) Vector[T] {
	v := Vector[T]{values: make([]T, n)}
	if n > 0 {
		v.nulls = bitset.New(uint(n))
		v.nulls.FlipRange(0, uint(n))
	}
	return v
}

func (v *Vector[T]) setNull(i int) {
	if v.nulls == nil {
		v.nulls = bitset.New(uint(len(v.values)))
	}
	v.nulls.Set(uint(i))
	var zero T
	v.values[i] = zero
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return len(v.values)
}

// IsNull reports whether element i is null.
func (v Vector[T]) IsNull(i int) bool {
	return v.nulls != nil && v.nulls.Test(uint(i))
}

// At returns element i and whether it is present.
func (v Vector[T]) At(i int) (T, bool) {
	if v.IsNull(i) {
		var zero T
		return zero, false
	}
	return v.values[i], true
}

// Value returns element i, or the zero value for a null element.
func (v Vector[T]) Value(i int) T {
	return v.values[i]
}

// Values returns a copy of the elements; null elements hold the zero value.
func (v Vector[T]) Values() []T {
	return append([]T(nil), v.values...)
}

// NullMask returns one flag per element, true where the element is null.
func (v Vector[T]) NullMask() []bool {
	out := make([]bool, len(v.values))
	if v.nulls == nil {
		return out
	}
	for i, e := v.nulls.NextSet(0); e; i, e = v.nulls.NextSet(i + 1) {
		if int(i) >= len(out) {
			break
		}
		out[i] = true
	}
	return out
}

// NullCount returns the number of null elements.
func (v Vector[T]) NullCount() int {
	if v.nulls == nil {
		return 0
	}
	return int(v.nulls.Count())
}

// Slice returns elements [from, to) as a new vector.
func (v Vector[T]) Slice(from, to int) Vector[T] {
	b := NewBuilder[T](to - from)
	for i := from; i < to; i++ {
		if x, ok := v.At(i); ok {
			b.Append(x)
		} else {
			b.AppendNull()
		}
	}
	return b.Build()
}

// Concat joins vectors in order.
func Concat[T any](parts ...Vector[T]) Vector[T] {
	n := 0
	for _, p := range parts {
		n += p.Len()
	}
	b := NewBuilder[T](n)
	for _, p := range parts {
		for i := 0; i < p.Len(); i++ {
			if x, ok := p.At(i); ok {
				b.Append(x)
			} else {
				b.AppendNull()
			}
		}
	}
	return b.Build()
}

// Builder accumulates elements for a Vector.
type Builder[T any] struct {
	values []T
	nulls  *bitset.BitSet
}

// NewBuilder returns a builder with room for capacity elements.
func NewBuilder[T any](capacity int) *Builder[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[T]{values: make([]T, 0, capacity)}
}

// Append adds a present element.
func (b *Builder[T]) Append(x T) {
	b.values = append(b.values, x)
}

// AppendNull adds a null element.
func (b *Builder[T]) AppendNull() {
	if b.nulls == nil {
		b.nulls = bitset.New(uint(cap(b.values)))
	}
	b.nulls.Set(uint(len(b.values)))
	var zero T
	b.values = append(b.values, zero)
}

// AppendOptional adds x when ok, a null otherwise.
func (b *Builder[T]) AppendOptional(x T, ok bool) {
	if ok {
		b.Append(x)
	} else {
		b.AppendNull()
	}
}

// Build returns the vector. The builder must not be used afterwards.
func (b *Builder[T]) Build() Vector[T] {
	v := Vector[T]{values: b.values, nulls: b.nulls}
	b.values, b.nulls = nil, nil
	return v
}

// Map applies fn to every present element. Failures of fn are collected for
// all elements and returned as one error naming every failing position.
func Map[T, U any](v Vector[T], op string, fn func(T) (U, error)) (Vector[U], error) {
	return MapOptional(v, op, func(x T) (U, bool, error) {
		u, err := fn(x)
		return u, true, err
	})
}

// MapOptional is Map where fn may itself produce a null by returning false.
func MapOptional[T, U any](v Vector[T], op string, fn func(T) (U, bool, error)) (Vector[U], error) {
	var failures cxerror.Failures
	b := NewBuilder[U](v.Len())
	for i := 0; i < v.Len(); i++ {
		x, ok := v.At(i)
		if !ok {
			b.AppendNull()
			continue
		}
		u, present, err := fn(x)
		if err != nil {
			failures.Record(i, err)
			b.AppendNull()
			continue
		}
		b.AppendOptional(u, present)
	}
	if err := failures.Err(op); err != nil {
		return Vector[U]{}, err
	}
	return b.Build(), nil
}

// RecycledLen returns the common length of two vectors. Lengths must match
// or one side must have length 1.
func RecycledLen(a, b int) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	}
	return 0, cxerror.Incompatible("vector lengths %d and %d cannot be recycled to a common size", a, b).
		WithDetail("left", a).
		WithDetail("right", b)
}

// Map2 applies fn elementwise to a and b, recycling a length-1 side.
// An element is null when either input is null.
func Map2[A, B, U any](a Vector[A], b Vector[B], op string, fn func(A, B) (U, error)) (Vector[U], error) {
	return Map2Optional(a, b, op, func(x A, y B) (U, bool, error) {
		u, err := fn(x, y)
		return u, true, err
	})
}

// Map2Optional is Map2 where fn may produce a null.
func Map2Optional[A, B, U any](a Vector[A], b Vector[B], op string, fn func(A, B) (U, bool, error)) (Vector[U], error) {
	n, err := RecycledLen(a.Len(), b.Len())
	if err != nil {
		return Vector[U]{}, cxerror.Wrap(err, op)
	}
	var failures cxerror.Failures
	out := NewBuilder[U](n)
	for i := 0; i < n; i++ {
		x, okA := a.At(index(i, a.Len()))
		y, okB := b.At(index(i, b.Len()))
		if !okA || !okB {
			out.AppendNull()
			continue
		}
		u, present, fErr := fn(x, y)
		if fErr != nil {
			failures.Record(i, fErr)
			out.AppendNull()
			continue
		}
		out.AppendOptional(u, present)
	}
	if err := failures.Err(op); err != nil {
		return Vector[U]{}, err
	}
	return out.Build(), nil
}

func index(i, n int) int {
	if n == 1 {
		return 0
	}
	return i
}
