package money

import (
	"testing"
	"time"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{9.5, "R$ 9,50"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-42.1, "-R$ 42,10"},
	}
	for _, tt := range tests {
		if got := BRL(tt.in); got != tt.want {
			t.Errorf("BRL(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6, "6"},
		{2.5, "2,5"},
		{0.67, "0,67"},
		{1000, "1.000"},
		{0.7000001, "0,7"},
	}
	for _, tt := range tests {
		if got := Quantity(tt.in); got != tt.want {
			t.Errorf("Quantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArea(t *testing.T) {
	if got := Area(10); got != "10,00 m²" {
		t.Errorf("Area(10) = %q", got)
	}
}

func TestValidUntil(t *testing.T) {
	issued := time.Date(2024, time.December, 28, 15, 0, 0, 0, time.UTC)
	got := ValidUntil(issued, 10)
	if Date(got) != "07/01/2025" {
		t.Errorf("ValidUntil = %s, want 07/01/2025", Date(got))
	}
}
