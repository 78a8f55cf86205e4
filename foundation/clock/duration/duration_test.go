package duration

import (
	"math"
	"testing"

	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func TestCast(t *testing.T) {
	tests := []struct {
		name string
		in   Duration
		to   precision.Precision
		want Duration
	}{
		{"same precision", Days(5), precision.Day, Days(5)},
		{"widen days to seconds", Days(2), precision.Second, Seconds(172800)},
		{"narrow truncates positive", Hours(47), precision.Day, Days(1)},
		{"narrow truncates negative toward zero", Hours(-47), precision.Day, Days(-1)},
		{"years to months", Years(2), precision.Month, Months(24)},
		{"months to quarters", Months(7), precision.Quarter, Quarters(2)},
		{"year to days uses average year", Years(400), precision.Day, Days(146097)},
		{"one year truncates to 365 days", Years(1), precision.Day, Days(365)},
		{"weeks to days", Weeks(-3), precision.Day, Days(-21)},
		{"ns to ms", Nanoseconds(1_999_999), precision.Millisecond, Milliseconds(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast(tt.in, tt.to)
			if err != nil {
				t.Fatalf("Cast() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Cast(%v, %s) = %v, want %v", tt.in, tt.to, got, tt.want)
			}
		})
	}
}

func TestCastIdempotent(t *testing.T) {
	inputs := []Duration{Nanoseconds(123456789012), Hours(-49), Months(17), Days(1)}
	for _, d := range inputs {
		for _, p := range precision.All() {
			once, err := Cast(d, p)
			if err != nil {
				continue
			}
			twice, err := Cast(once, p)
			if err != nil || twice != once {
				t.Errorf("Cast(Cast(%v, %s)) = %v, %v; want %v", d, p, twice, err, once)
			}
		}
	}
}

func TestCastOverflow(t *testing.T) {
	_, err := Cast(Days(math.MaxInt64/86400), precision.Nanosecond)
	if !cxerror.HasCode(err, cxerror.CodeOverflow) {
		t.Errorf("Cast() error = %v, want overflow", err)
	}
	// 128-bit intermediate: widening then narrowing in one step must not overflow.
	got, err := Cast(Nanoseconds(math.MaxInt64), precision.Second)
	if err != nil || got != Seconds(math.MaxInt64/1_000_000_000) {
		t.Errorf("Cast(max ns, second) = %v, %v", got, err)
	}
}

func TestArithmetic(t *testing.T) {
	if got, err := Add(Days(3), Days(4)); err != nil || got != Days(7) {
		t.Errorf("Add = %v, %v", got, err)
	}
	if got, err := Sub(Days(3), Days(4)); err != nil || got != Days(-1) {
		t.Errorf("Sub = %v, %v", got, err)
	}
	if got, err := Mul(Months(3), 4); err != nil || got != Months(12) {
		t.Errorf("Mul = %v, %v", got, err)
	}
	if got, err := Div(Seconds(-7), 2); err != nil || got != Seconds(-3) {
		t.Errorf("Div = %v, %v", got, err)
	}
	if got, err := Quotient(Days(-7), Days(2)); err != nil || got != -3 {
		t.Errorf("Quotient = %d, %v", got, err)
	}
	if got, err := Remainder(Days(-7), Days(2)); err != nil || got != Days(-1) {
		t.Errorf("Remainder = %v, %v", got, err)
	}
	if got, err := Abs(Hours(-5)); err != nil || got != Hours(5) {
		t.Errorf("Abs = %v, %v", got, err)
	}
}

func TestArithmeticErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		code cxerror.Code
	}{
		{"add mixed precision", func() error { _, err := Add(Days(1), Hours(1)); return err }, cxerror.CodeIncompatibleType},
		{"sub mixed precision", func() error { _, err := Sub(Months(1), Years(1)); return err }, cxerror.CodeIncompatibleType},
		{"quotient mixed precision", func() error { _, err := Quotient(Days(1), Weeks(1)); return err }, cxerror.CodeIncompatibleType},
		{"add overflow", func() error { _, err := Add(Seconds(math.MaxInt64), Seconds(1)); return err }, cxerror.CodeOverflow},
		{"negate min", func() error { _, err := Neg(Seconds(math.MinInt64)); return err }, cxerror.CodeOverflow},
		{"multiply overflow", func() error { _, err := Mul(Seconds(math.MaxInt64), 2); return err }, cxerror.CodeOverflow},
		{"divide by zero", func() error { _, err := Div(Seconds(1), 0); return err }, cxerror.CodeInvalidInput},
		{"quotient by zero", func() error { _, err := Quotient(Seconds(1), Seconds(0)); return err }, cxerror.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !cxerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if c, err := Compare(Days(1), Hours(24)); err != nil || c != 0 {
		t.Errorf("Compare(1 day, 24 hours) = %d, %v", c, err)
	}
	if c, err := Compare(Days(1), Hours(25)); err != nil || c != -1 {
		t.Errorf("Compare(1 day, 25 hours) = %d, %v", c, err)
	}
	if _, err := Compare(Months(1), Days(30)); !cxerror.HasCode(err, cxerror.CodeIncompatibleType) {
		t.Errorf("Compare(month, day) error = %v", err)
	}
}

func TestString(t *testing.T) {
	tests := map[Duration]string{
		Months(3):   "3 months",
		Days(1):     "1 day",
		Seconds(-1): "-1 second",
		Weeks(0):    "0 weeks",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestCastVector(t *testing.T) {
	v := nullable.New([]Duration{Days(1), {}, Days(3)}, []bool{false, true, false})
	out, err := CastVector(v, precision.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsNull(1) || out.Value(0) != Hours(24) || out.Value(2) != Hours(72) {
		t.Errorf("CastVector = %v %v", out.Values(), out.NullMask())
	}
}
