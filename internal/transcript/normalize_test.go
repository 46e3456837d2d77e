package transcript

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestToSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "hms with millis", in: "01:02:03.450", want: 3723.45},
		{name: "ms with short fraction", in: "02:03.5", want: 123.5}, // "5" -> "500" -> 0.5s
		{name: "comma separator", in: "00:01:02,5", want: 62.5},
		{name: "hms plain", in: "00:00:01", want: 1},
		{name: "ms plain", in: "12:34", want: 754},
		{name: "fraction longer than 3 digits", in: "00:00:01.23456", want: 1.234},
		{name: "seconds only", in: "45", want: 45},
		{name: "empty", in: "", want: 0},
		{name: "garbage", in: "bad:input", want: 0},
		{name: "non numeric hours", in: "xx:00:01", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToSeconds(tc.in)
			if math.Abs(got-tc.want) > epsilon {
				t.Fatalf("ToSeconds(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestToSecondsInternal_MalformedIsAnError(t *testing.T) {
	// la forme interne distingue "malformé" de "zéro légitime"
	if _, err := toSeconds("bad:input"); err == nil {
		t.Fatal("toSeconds(\"bad:input\"): expected error")
	}
	if s, err := toSeconds("00:00"); err != nil || s != 0 {
		t.Fatalf("toSeconds(\"00:00\") = %v, %v; want 0, nil", s, err)
	}
	if s, err := toSeconds(""); err != nil || s != 0 {
		t.Fatalf("toSeconds(\"\") = %v, %v; want 0, nil", s, err)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{70, "01:10"},
		{123.9, "02:03"}, // arrondi à la seconde inférieure
		{3723.45, "62:03"},
		{-2, "00:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
