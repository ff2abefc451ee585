package domain

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmountConvertsToScaledUnits(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"100", AmountFromUnits(1_000_000)},
		{"100.0", AmountFromUnits(1_000_000)},
		{"1.5", AmountFromUnits(15_000)},
		{"0.0001", AmountFromUnits(1)},
		{"-50.25", AmountFromUnits(-502_500)},
		{" 2.5 ", AmountFromUnits(25_000)},
		{"0", AmountFromUnits(0)},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d units, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.23456", "0.00001"} {
		if _, err := ParseAmount(in); err == nil {
			t.Fatalf("ParseAmount(%q): expected error", in)
		}
	}
}

func TestParseAmountRejectsOutOfRange(t *testing.T) {
	_, err := ParseAmount("99999999999999999999999999")
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestAmountStringFormatsFourPlaces(t *testing.T) {
	cases := []struct {
		in   Amount
		want string
	}{
		{AmountFromUnits(1_000_000), "100.0000"},
		{AmountFromUnits(15_000), "1.5000"},
		{AmountFromUnits(1), "0.0001"},
		{AmountFromUnits(0), "0.0000"},
		{AmountFromUnits(-502_500), "-50.2500"},
		{AmountFromUnits(-1), "-0.0001"},
	}

	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("Amount(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountAddAndSub(t *testing.T) {
	sum, err := AmountFromUnits(100).Add(AmountFromUnits(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != AmountFromUnits(150) {
		t.Fatalf("expected 150 units, got %d", sum)
	}

	diff, err := AmountFromUnits(100).Sub(AmountFromUnits(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != AmountFromUnits(70) {
		t.Fatalf("expected 70 units, got %d", diff)
	}
}

func TestAmountAddOverflow(t *testing.T) {
	if _, err := AmountFromUnits(math.MaxInt64).Add(AmountFromUnits(1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if _, err := AmountFromUnits(math.MinInt64).Add(AmountFromUnits(-1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestAmountSubOverflow(t *testing.T) {
	if _, err := AmountFromUnits(math.MinInt64).Sub(AmountFromUnits(1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestAmountSigns(t *testing.T) {
	if !AmountFromUnits(1).IsPositive() || AmountFromUnits(0).IsPositive() || AmountFromUnits(-1).IsPositive() {
		t.Fatal("IsPositive misclassified a value")
	}
	if !AmountFromUnits(-1).IsNegative() || AmountFromUnits(0).IsNegative() {
		t.Fatal("IsNegative misclassified a value")
	}
}
