package fixednum

import (
	"testing"
	"unsafe"
)

func TestD19_ZeroValue(t *testing.T) {
	var d D19
	if d != Zero {
		t.Errorf("D19{} = %q, want %q", d, Zero)
	}
	if !d.IsZero() {
		t.Errorf("D19{}.IsZero() = false")
	}
}

func TestD19_Size(t *testing.T) {
	d := D19{}
	got := unsafe.Sizeof(d)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", d, got, want)
	}
}

func TestD19_Constants(t *testing.T) {
	tests := []struct {
		name string
		d    D19
		want string
	}{
		{"Max", Max, "17014118346046923173.1687303715884105727"},
		{"Min", Min, "-17014118346046923173.1687303715884105728"},
		{"MaxInt", MaxInt, "17014118346046923173"},
		{"MinInt", MinInt, "-17014118346046923173"},
		{"SmallestStep", SmallestStep, "0.0000000000000000001"},
		{"Ln2", Ln2, "0.6931471805599453094"},
		{"Zero", Zero, "0"},
		{"One", One, "1"},
		{"Two", Two, "2"},
		{"Ten", Ten, "10"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.name, got, tt.want)
		}
	}
	if got := MaxInt; got != Max.Trunc() {
		t.Errorf("MaxInt = %q, want Trunc(Max) = %q", got, Max.Trunc())
	}
	if got := MinInt; got != Min.Ceil() {
		t.Errorf("MinInt = %q, want Ceil(Min) = %q", got, Min.Ceil())
	}
}

func TestFromRepr(t *testing.T) {
	tests := []struct {
		hi   int64
		lo   uint64
		want D19
	}{
		{0, 0, Zero},
		{0, 1, SmallestStep},
		{-1, ^uint64(0), SmallestStep.Neg()},
		{0x7fffffffffffffff, ^uint64(0), Max},
		{-0x8000000000000000, 0, Min},
	}
	for _, tt := range tests {
		got := FromRepr(tt.hi, tt.lo)
		if got != tt.want {
			t.Errorf("FromRepr(%v, %v) = %q, want %q", tt.hi, tt.lo, got, tt.want)
		}
		hi, lo := got.Repr()
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("%q.Repr() = %v, %v, want %v, %v", got, hi, lo, tt.hi, tt.lo)
		}
	}
}

func TestD19_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e, want string
		}{
			{"0", "0", "0"},
			{"1", "2", "3"},
			{"1.5", "-0.25", "1.25"},
			{"-1.5", "-2.5", "-4"},
			{"0.0000000000000000001", "0.0000000000000000002", "0.0000000000000000003"},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			want := MustParse(tt.want)
			if got := d.Add(e); got != want {
				t.Errorf("Add(%q, %q) = %q, want %q", d, e, got, want)
			}
			if got := e.Add(d); got != want {
				t.Errorf("Add(%q, %q) = %q, want %q", e, d, got, want)
			}
		}
	})
	t.Run("boundary", func(t *testing.T) {
		if _, ok := Max.CheckedAdd(SmallestStep); ok {
			t.Errorf("CheckedAdd(Max, SmallestStep) did not report overflow")
		}
		if got, want := Min.Add(Max), SmallestStep.Neg(); got != want {
			t.Errorf("Add(Min, Max) = %q, want %q", got, want)
		}
		if got := Max.SaturatingAdd(One); got != Max {
			t.Errorf("SaturatingAdd(Max, 1) = %q, want Max", got)
		}
		if got := Min.SaturatingAdd(One.Neg()); got != Min {
			t.Errorf("SaturatingAdd(Min, -1) = %q, want Min", got)
		}
		if !overflowChecks {
			if got := Max.Add(SmallestStep); got != Min {
				t.Errorf("Add(Max, SmallestStep) = %q, want wrap to Min", got)
			}
		}
	})
}

func TestD19_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e, want string
		}{
			{"3", "2", "1"},
			{"2", "3", "-1"},
			{"-1.5", "-0.5", "-1"},
			{"0", "0.0000000000000000001", "-0.0000000000000000001"},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			want := MustParse(tt.want)
			if got := d.Sub(e); got != want {
				t.Errorf("Sub(%q, %q) = %q, want %q", d, e, got, want)
			}
		}
	})
	t.Run("boundary", func(t *testing.T) {
		if _, ok := Min.CheckedSub(SmallestStep); ok {
			t.Errorf("CheckedSub(Min, SmallestStep) did not report overflow")
		}
		if got := Min.SaturatingSub(One); got != Min {
			t.Errorf("SaturatingSub(Min, 1) = %q, want Min", got)
		}
		if got := Max.SaturatingSub(One.Neg()); got != Max {
			t.Errorf("SaturatingSub(Max, -1) = %q, want Max", got)
		}
		if got := Zero.SaturatingSub(Min); got != Max {
			t.Errorf("SaturatingSub(0, Min) = %q, want Max", got)
		}
	})
}

func TestD19_NegAbs(t *testing.T) {
	tests := []struct {
		d, neg, abs string
	}{
		{"0", "0", "0"},
		{"1.5", "-1.5", "1.5"},
		{"-1.5", "1.5", "1.5"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := d.Neg(); got != MustParse(tt.neg) {
			t.Errorf("Neg(%q) = %q, want %q", d, got, tt.neg)
		}
		if got := d.Abs(); got != MustParse(tt.abs) {
			t.Errorf("Abs(%q) = %q, want %q", d, got, tt.abs)
		}
	}
	// The minimum has no positive counterpart and saturates.
	if got := Min.Neg(); got != Max {
		t.Errorf("Neg(Min) = %q, want Max", got)
	}
	if got := Min.Abs(); got != Max {
		t.Errorf("Abs(Min) = %q, want Max", got)
	}
	if got := Max.Neg().Neg(); got != Max {
		t.Errorf("Neg(Neg(Max)) = %q, want Max", got)
	}
}

func TestD19_SignSignum(t *testing.T) {
	tests := []struct {
		d      string
		sign   int
		signum string
	}{
		{"-7.25", -1, "-1"},
		{"0", 0, "0"},
		{"0.0000000000000000001", 1, "1"},
		{"42", 1, "1"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := d.Sign(); got != tt.sign {
			t.Errorf("Sign(%q) = %v, want %v", d, got, tt.sign)
		}
		if got := d.Signum(); got != MustParse(tt.signum) {
			t.Errorf("Signum(%q) = %q, want %q", d, got, tt.signum)
		}
	}
}

func TestD19_Rem(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"14.7", "5", "4.7"},
		{"-14.7", "5", "-4.7"},
		{"14.7", "-5", "4.7"},
		{"-14.7", "-5", "-4.7"},
		{"10", "2.5", "0"},
		{"1", "0.75", "0.25"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		want := MustParse(tt.want)
		if got := d.Rem(e); got != want {
			t.Errorf("Rem(%q, %q) = %q, want %q", d, e, got, want)
		}
	}
	// A zero divisor returns the dividend unchanged.
	if got := MustParse("14.7").Rem(Zero); got != MustParse("14.7") {
		t.Errorf("Rem(14.7, 0) = %q, want 14.7", got)
	}
	if got := Min.Rem(SmallestStep.Neg()); got != Zero {
		t.Errorf("Rem(Min, -SmallestStep) = %q, want 0", got)
	}
}

func TestD19_Cmp(t *testing.T) {
	ordered := []D19{
		Min,
		MinInt,
		MustParse("-1.0000000000000000001"),
		One.Neg(),
		SmallestStep.Neg(),
		Zero,
		SmallestStep,
		One,
		MustParse("1.0000000000000000001"),
		MaxInt,
		Max,
	}
	for i, d := range ordered {
		for j, e := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := d.Cmp(e); got != want {
				t.Errorf("Cmp(%q, %q) = %v, want %v", d, e, got, want)
			}
			if got := d.Less(e); got != (want < 0) {
				t.Errorf("Less(%q, %q) = %v, want %v", d, e, got, want < 0)
			}
		}
	}
}

func TestD19_Predicates(t *testing.T) {
	if !MustParse("5").IsInt() || MustParse("5.5").IsInt() {
		t.Errorf("IsInt misclassified")
	}
	if !MustParse("0.5").IsPos() || MustParse("-0.5").IsPos() || Zero.IsPos() {
		t.Errorf("IsPos misclassified")
	}
	if !MustParse("-0.5").IsNeg() || MustParse("0.5").IsNeg() || Zero.IsNeg() {
		t.Errorf("IsNeg misclassified")
	}
}

func BenchmarkAdd(b *testing.B) {
	x, y := MustParse("12345.6789"), MustParse("9876.54321")
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := MustParse("12345.6789"), MustParse("9876.54321")
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkMulWhole(b *testing.B) {
	x, y := MustParse("12345.6789"), MustParse("9876")
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := MustParse("12345.6789"), MustParse("9876.54321")
	for i := 0; i < b.N; i++ {
		_ = x.Div(y)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("12345.6789")
	}
}

func BenchmarkString(b *testing.B) {
	x := MustParse("12345.6789")
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := MustParse("12345.6789")
	for i := 0; i < b.N; i++ {
		_ = x.Sqrt()
	}
}
