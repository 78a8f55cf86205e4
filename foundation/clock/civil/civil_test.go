package civil

import (
	"testing"

	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func TestDaysFromCivil(t *testing.T) {
	tests := []struct {
		y, m, d int64
		want    int64
	}{
		{1970, 1, 1, 0},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2020, 2, 29, 18321},
		{2021, 1, 1, 18628},
		{0, 3, 1, -719468},
	}
	for _, tt := range tests {
		if got := DaysFromCivil(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("DaysFromCivil(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
		y, m, d := CivilFromDays(tt.want)
		if y != tt.y || m != tt.m || d != tt.d {
			t.Errorf("CivilFromDays(%d) = %d-%d-%d", tt.want, y, m, d)
		}
	}
}

func TestCivilRoundTrip(t *testing.T) {
	for z := int64(-12_000_000); z <= 12_000_000; z += 997 {
		y, m, d := CivilFromDays(z)
		if d < 1 || d > DaysInMonth(y, m) {
			t.Fatalf("CivilFromDays(%d) = %d-%d-%d is not a valid date", z, y, m, d)
		}
		if back := DaysFromCivil(y, m, d); back != z {
			t.Fatalf("round trip of %d gave %d", z, back)
		}
	}
}

func TestDaysFromCivilIsLinearInDay(t *testing.T) {
	if DaysFromCivil(2021, 2, 30) != DaysFromCivil(2021, 3, 2) {
		t.Error("2021-02-30 should overflow to 2021-03-02")
	}
	if DaysFromCivil(2021, 1, 0) != DaysFromCivil(2020, 12, 31) {
		t.Error("2021-01-00 should underflow to 2020-12-31")
	}
}

func TestLeapAndLengths(t *testing.T) {
	tests := []struct {
		y    int64
		leap bool
	}{
		{2000, true}, {1900, false}, {2020, true}, {2021, false}, {0, true}, {-4, true}, {-100, false},
	}
	for _, tt := range tests {
		if IsLeap(tt.y) != tt.leap {
			t.Errorf("IsLeap(%d) = %v", tt.y, !tt.leap)
		}
	}
	if DaysInMonth(2021, 2) != 28 || DaysInMonth(2020, 2) != 29 || DaysInMonth(2021, 4) != 30 {
		t.Error("DaysInMonth is wrong")
	}
	if DaysInYear(2020) != 366 || DaysInYear(2021) != 365 {
		t.Error("DaysInYear is wrong")
	}
}

func TestOrdinal(t *testing.T) {
	z := DaysFromOrdinal(2021, 60)
	if z != DaysFromCivil(2021, 3, 1) {
		t.Errorf("day 60 of 2021 should be March 1st")
	}
	if y, yd := OrdinalFromDays(DaysFromCivil(2020, 12, 31)); y != 2020 || yd != 366 {
		t.Errorf("OrdinalFromDays = %d-%d", y, yd)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct{ y, m, n, wy, wm int64 }{
		{2021, 1, 1, 2021, 2},
		{2021, 12, 1, 2022, 1},
		{2021, 1, -1, 2020, 12},
		{2021, 3, -27, 2018, 12},
	}
	for _, tt := range tests {
		if y, m := AddMonths(tt.y, tt.m, tt.n); y != tt.wy || m != tt.wm {
			t.Errorf("AddMonths(%d, %d, %d) = %d-%d", tt.y, tt.m, tt.n, y, m)
		}
	}
}

func TestRanges(t *testing.T) {
	if err := MonthRange.Check("month", 13); !cxerror.HasCode(err, cxerror.CodeValueOutOfRange) {
		t.Errorf("month 13 error = %v", err)
	}
	if err := QuarterDayRange.Check("day", 92); err != nil {
		t.Errorf("quarter day 92 error = %v", err)
	}
	if err := YearRange.Check("year", -32768); err == nil {
		t.Error("year -32768 should be out of range")
	}
	if !WeekdayIndexRange.Contains(5) || WeekdayIndexRange.Contains(6) {
		t.Error("weekday index range should be [1, 5]")
	}
}

func TestMonthWeekday(t *testing.T) {
	if got := LastIndex(2021, 2, weekday.Sunday); got != 4 {
		t.Errorf("Sundays in Feb 2021 = %d, want 4", got)
	}
	if got := LastIndex(2021, 1, weekday.Friday); got != 5 {
		t.Errorf("Fridays in Jan 2021 = %d, want 5", got)
	}
	if got := DaysFromMonthWeekday(2021, 2, weekday.Sunday, 1); got != DaysFromCivil(2021, 2, 7) {
		t.Errorf("first Sunday of Feb 2021 = %d", got)
	}
	if got := DaysFromMonthWeekday(2021, 2, weekday.Sunday, 5); got != DaysFromCivil(2021, 3, 7) {
		t.Errorf("fifth Sunday of Feb 2021 should overflow to March 7th, got %d", got)
	}
	y, m, wd, idx := MonthWeekdayFromDays(DaysFromCivil(2021, 2, 28))
	if y != 2021 || m != 2 || wd != weekday.Sunday || idx != 4 {
		t.Errorf("MonthWeekdayFromDays = %d-%d %v[%d]", y, m, wd, idx)
	}
}

func TestQuarterly(t *testing.T) {
	lengths := map[int64][4]int64{
		2019: {90, 91, 92, 92},
		2020: {91, 91, 92, 92},
	}
	for y, want := range lengths {
		for q := int64(1); q <= 4; q++ {
			if got := DaysInQuarter(y, q, 1); got != want[q-1] {
				t.Errorf("DaysInQuarter(%d, %d) = %d, want %d", y, q, got, want[q-1])
			}
		}
	}

	if cy, cm := QuarterStart(2019, 1, 2); cy != 2018 || cm != 2 {
		t.Errorf("fiscal 2019 with February start begins %d-%d", cy, cm)
	}
	if cy, cm := QuarterStart(2020, 4, 12); cy != 2020 || cm != 9 {
		t.Errorf("Q4 of fiscal 2020 with December start begins %d-%d", cy, cm)
	}
	if got := DaysInQuarter(2019, 4, 2); got != 92 {
		t.Errorf("DaysInQuarter(2019, 4, Feb) = %d, want 92", got)
	}

	tests := []struct {
		cy, cm, cd int64
		start      int64
		y, q, d    int64
	}{
		{2019, 10, 1, 1, 2019, 4, 1},
		{2019, 2, 1, 2, 2020, 1, 1},
		{2019, 1, 31, 2, 2019, 4, 92},
		{2019, 12, 15, 12, 2020, 1, 15},
		{2020, 11, 30, 12, 2020, 4, 91},
	}
	for _, tt := range tests {
		z := DaysFromCivil(tt.cy, tt.cm, tt.cd)
		y, q, d := QuarterlyFromDays(z, tt.start)
		if y != tt.y || q != tt.q || d != tt.d {
			t.Errorf("QuarterlyFromDays(%d-%d-%d, start %d) = %d-Q%d-%d, want %d-Q%d-%d",
				tt.cy, tt.cm, tt.cd, tt.start, y, q, d, tt.y, tt.q, tt.d)
		}
		if back := DaysFromQuarterly(y, q, d, tt.start); back != z {
			t.Errorf("DaysFromQuarterly round trip gave %d, want %d", back, z)
		}
	}
}

func TestQuarterlyRoundTrip(t *testing.T) {
	for start := int64(1); start <= 12; start++ {
		for z := int64(-3000); z <= 3000; z += 7 {
			y, q, d := QuarterlyFromDays(z, start)
			if d < 1 || d > DaysInQuarter(y, q, start) {
				t.Fatalf("start %d: day %d gave invalid %d-Q%d-%d", start, z, y, q, d)
			}
			if DaysFromQuarterly(y, q, d, start) != z {
				t.Fatalf("start %d: round trip of %d failed", start, z)
			}
		}
	}
}

func TestAddQuarters(t *testing.T) {
	tests := []struct{ y, q, n, wy, wq int64 }{
		{2019, 4, 1, 2020, 1},
		{2019, 1, -1, 2018, 4},
		{2019, 2, 10, 2021, 4},
		{2019, 2, -6, 2017, 4},
	}
	for _, tt := range tests {
		if y, q := AddQuarters(tt.y, tt.q, tt.n); y != tt.wy || q != tt.wq {
			t.Errorf("AddQuarters(%d, %d, %d) = %d-Q%d", tt.y, tt.q, tt.n, y, q)
		}
	}
}

func TestFiscalLeap(t *testing.T) {
	if !FiscalLeap(2021, 2) || FiscalLeap(2020, 2) {
		t.Error("with a February start, fiscal 2021 holds 2020-02-29")
	}
	if !FiscalLeap(2020, 1) || !FiscalLeap(2020, 6) {
		t.Error("fiscal 2020 with January or June start holds 2020-02-29")
	}
}

func TestWeekly(t *testing.T) {
	if got := IsoLastWeek(2015); got != 53 {
		t.Errorf("ISO 2015 weeks = %d, want 53", got)
	}
	if got := IsoLastWeek(2016); got != 52 {
		t.Errorf("ISO 2016 weeks = %d, want 52", got)
	}
	if got := WeekYearStart(2015, weekday.Monday); got != DaysFromCivil(2014, 12, 29) {
		t.Errorf("ISO 2015 starts on day %d", got)
	}
	if got := WeekYearStart(2021, weekday.Sunday); got != DaysFromCivil(2021, 1, 3) {
		t.Errorf("Sunday-start 2021 starts on day %d", got)
	}

	y, w, d := WeeklyFromDays(DaysFromCivil(2021, 1, 1), weekday.Monday)
	if y != 2020 || w != 53 || d != 5 {
		t.Errorf("2021-01-01 is ISO %d-W%d-%d, want 2020-W53-5", y, w, d)
	}
	y, w, d = WeeklyFromDays(DaysFromCivil(2019, 12, 30), weekday.Monday)
	if y != 2020 || w != 1 || d != 1 {
		t.Errorf("2019-12-30 is ISO %d-W%d-%d, want 2020-W01-1", y, w, d)
	}
}

func TestWeeklyRoundTrip(t *testing.T) {
	for s := weekday.Sunday; s <= weekday.Saturday; s++ {
		for z := int64(-5000); z <= 5000; z += 3 {
			y, w, d := WeeklyFromDays(z, s)
			if w < 1 || w > LastWeek(y, s) || d < 1 || d > 7 {
				t.Fatalf("start %v: day %d gave invalid %d-W%d-%d", s, z, y, w, d)
			}
			if DaysFromWeekly(y, w, d, s) != z {
				t.Fatalf("start %v: round trip of %d failed", s, z)
			}
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		ticks int64
		p     precision.Precision
		days  int64
		tod   TimeOfDay
	}{
		{"day", 5, precision.Day, 5, TimeOfDay{}},
		{"hour", 49, precision.Hour, 2, TimeOfDay{Hour: 1}},
		{"negative second", -1, precision.Second, -1, TimeOfDay{23, 59, 59, 0}},
		{"millisecond", 90061001, precision.Millisecond, 1, TimeOfDay{1, 1, 1, 1}},
		{"minute", 1441, precision.Minute, 1, TimeOfDay{Minute: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, tod := SplitTicks(tt.ticks, tt.p)
			if days != tt.days || tod != tt.tod {
				t.Errorf("SplitTicks = %d %+v, want %d %+v", days, tod, tt.days, tt.tod)
			}
			back, ok := JoinTicks(days, tod, tt.p)
			if !ok || back != tt.ticks {
				t.Errorf("JoinTicks = %d, %v", back, ok)
			}
		})
	}
	if _, ok := JoinTicks(200_000_000, TimeOfDay{}, precision.Nanosecond); ok {
		t.Error("JoinTicks should overflow")
	}
}
