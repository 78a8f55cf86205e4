package nullable

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func TestVectorBasics(t *testing.T) {
	v := New([]int{1, 2, 3, 4}, []bool{false, true, false, true})

	if v.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", v.Len())
	}
	if v.NullCount() != 2 {
		t.Errorf("NullCount() = %d, want 2", v.NullCount())
	}
	if _, ok := v.At(1); ok {
		t.Error("element 1 should be null")
	}
	if x, ok := v.At(2); !ok || x != 3 {
		t.Errorf("At(2) = %d, %v", x, ok)
	}
	if got := v.Values(); !reflect.DeepEqual(got, []int{1, 0, 3, 0}) {
		t.Errorf("Values() = %v", got)
	}
	if got := v.NullMask(); !reflect.DeepEqual(got, []bool{false, true, false, true}) {
		t.Errorf("NullMask() = %v", got)
	}
}

func TestNullsAndEmpty(t *testing.T) {
	n := Nulls[string](3)
	if n.NullCount() != 3 || n.Len() != 3 {
		t.Errorf("Nulls(3): len %d nulls %d", n.Len(), n.NullCount())
	}
	var empty Vector[int]
	if empty.Len() != 0 || empty.NullCount() != 0 || empty.IsNull(0) {
		t.Error("zero vector should be empty without nulls")
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder[int](0)
	b.Append(7)
	b.AppendNull()
	b.AppendOptional(9, true)
	b.AppendOptional(0, false)
	v := b.Build()

	if got := v.NullMask(); !reflect.DeepEqual(got, []bool{false, true, false, true}) {
		t.Errorf("NullMask() = %v", got)
	}
	if v.Value(2) != 9 {
		t.Errorf("Value(2) = %d", v.Value(2))
	}
}

func TestMapPropagatesNull(t *testing.T) {
	v := New([]int{1, 2, 3}, []bool{false, true, false})
	calls := 0
	out, err := Map(v, "double", func(x int) (int, error) {
		calls++
		return 2 * x, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
	if got := out.Values(); !reflect.DeepEqual(got, []int{2, 0, 6}) {
		t.Errorf("Values() = %v", got)
	}
	if !out.IsNull(1) {
		t.Error("null should propagate")
	}
}

func TestMapAggregatesErrors(t *testing.T) {
	v := Of(1, 13, 5, 14)
	_, err := Map(v, "month", func(m int) (string, error) {
		if m > 12 {
			return "", cxerror.OutOfRange("month", int64(m), 1, 12)
		}
		return strconv.Itoa(m), nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var cx *cxerror.Error
	if !errors.As(err, &cx) {
		t.Fatal("expected *cxerror.Error")
	}
	if pos, _ := cx.Detail("positions"); !reflect.DeepEqual(pos, []int{1, 3}) {
		t.Errorf("positions = %v, want [1 3]", pos)
	}
	if cx.Code() != cxerror.CodeValueOutOfRange {
		t.Errorf("Code() = %v", cx.Code())
	}
}

func TestMapOptional(t *testing.T) {
	out, err := MapOptional(Of(1, 2, 3), "odd", func(x int) (int, bool, error) {
		return x, x%2 == 1, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.NullMask(); !reflect.DeepEqual(got, []bool{false, true, false}) {
		t.Errorf("NullMask() = %v", got)
	}
}

func TestMap2Recycling(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Vector[int]
		want    []int
		nulls   []bool
		wantErr bool
	}{
		{"equal lengths", Of(1, 2), Of(10, 20), []int{11, 22}, []bool{false, false}, false},
		{"recycle left", Of(1), Of(10, 20, 30), []int{11, 21, 31}, []bool{false, false, false}, false},
		{"recycle right", Of(1, 2), Of(5), []int{6, 7}, []bool{false, false}, false},
		{"null either side", New([]int{1, 2}, []bool{true, false}), Of(5), []int{0, 7}, []bool{true, false}, false},
		{"incompatible lengths", Of(1, 2), Of(1, 2, 3), nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Map2(tt.a, tt.b, "add", func(x, y int) (int, error) { return x + y, nil })
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cxerror.HasCode(err, cxerror.CodeIncompatibleType) {
					t.Errorf("code = %v", cxerror.GetCode(err))
				}
				return
			}
			if !reflect.DeepEqual(out.Values(), tt.want) || !reflect.DeepEqual(out.NullMask(), tt.nulls) {
				t.Errorf("got %v %v, want %v %v", out.Values(), out.NullMask(), tt.want, tt.nulls)
			}
		})
	}
}

func TestSliceConcat(t *testing.T) {
	v := New([]int{1, 2, 3, 4, 5}, []bool{false, false, true, false, false})
	left, right := v.Slice(0, 3), v.Slice(3, 5)
	joined := Concat(left, right)

	if !reflect.DeepEqual(joined.Values(), v.Values()) || !reflect.DeepEqual(joined.NullMask(), v.NullMask()) {
		t.Errorf("Concat(Slice) = %v %v", joined.Values(), joined.NullMask())
	}
	if right.NullCount() != 0 {
		t.Error("right half has no nulls")
	}
}
