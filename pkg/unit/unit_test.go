package unit

import (
	"math"
	"testing"
)

func TestLengthArithmetic(t *testing.T) {
	a, b := Px(6), Px(4)

	tests := []struct {
		name string
		got  Length
		want float64
	}{
		{"Add", a.Add(b), 10},
		{"Sub", a.Sub(b), 2},
		{"Mul", a.Mul(b), 24},
		{"Div", a.Div(b), 1.5},
		{"Scale", a.Scale(0.5), 3},
		{"Abs", Px(-3).Abs(), 3},
		{"Neg", a.Neg(), -6},
		{"Max", a.Max(b), 6},
		{"Min", a.Min(b), 4},
	}

	for _, tt := range tests {
		if !tt.got.EqualF(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLengthScalar(t *testing.T) {
	a := Px(6)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"AddF", a.AddF(1), 7},
		{"SubF", a.SubF(1), 5},
		{"MulF", a.MulF(2), 12},
		{"DivF", a.DivF(4), 1.5},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLengthCompare(t *testing.T) {
	if !Px(2).Greater(Px(1)) || Px(1).Greater(Px(1)) {
		t.Error("Greater is wrong")
	}
	if !Px(1).Less(Px(2)) || Px(2).Less(Px(2)) {
		t.Error("Less is wrong")
	}
	if !Px(2).Equal(Px(2)) || Px(2).Equal(Px(3)) {
		t.Error("Equal is wrong")
	}
	var zero Length
	if !zero.IsZero() {
		t.Error("zero value should be 0px")
	}
}

func TestLengthFinite(t *testing.T) {
	if !Px(1).IsFinite() {
		t.Error("Px(1) should be finite")
	}
	if Px(math.Inf(1)).IsFinite() || Px(math.NaN()).IsFinite() {
		t.Error("Inf and NaN should not be finite")
	}
}

func TestLengthString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{0.5, "0.5"},
		{-12.25, "-12.25"},
	}
	for _, tt := range tests {
		if got := Px(tt.in).String(); got != tt.want {
			t.Errorf("Px(%v).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    Axis
		wantErr bool
	}{
		{"x", X, false},
		{"Width", X, false},
		{"y", Y, false},
		{" height ", Y, false},
		{"z", X, true},
		{"", X, true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestVector(t *testing.T) {
	v := Vec(3, 4)

	if !v.Get(X).EqualF(3) || !v.Get(Y).EqualF(4) {
		t.Errorf("Get = %v, %v", v.Get(X), v.Get(Y))
	}
	if w := v.With(Y, Px(9)); !w.Y.EqualF(9) || !w.X.EqualF(3) {
		t.Errorf("With(Y, 9) = %v", w)
	}
	if !v.Y.EqualF(4) {
		t.Error("With should not mutate the receiver")
	}
	if s := v.Add(Vec(1, 1)); s != Vec(4, 5) {
		t.Errorf("Add = %v, want (4, 5)", s)
	}
	if got := v.String(); got != "(3, 4)" {
		t.Errorf("String() = %q, want %q", got, "(3, 4)")
	}
	if X.Cross() != Y || Y.Cross() != X {
		t.Error("Cross is wrong")
	}
}
