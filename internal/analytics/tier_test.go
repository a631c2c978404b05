package analytics

import (
	"testing"
)

func TestRankForPoints_Boundaries(t *testing.T) {
	tests := []struct {
		points  int
		tier    string
		numeral string
	}{
		{points: -50, tier: "BRONZE", numeral: "III"},
		{points: 0, tier: "BRONZE", numeral: "III"},
		{points: 99, tier: "BRONZE", numeral: "III"},
		{points: 100, tier: "BRONZE", numeral: "II"},
		{points: 250, tier: "BRONZE", numeral: "I"},
		{points: 500, tier: "SILVER", numeral: "III"},
		{points: 1999, tier: "SILVER", numeral: "I"},
		{points: 2000, tier: "GOLD", numeral: "III"},
		{points: 4400, tier: "DIAMOND", numeral: "III"},
		{points: 7700, tier: "PLATINUM", numeral: "III"},
		{points: 10399, tier: "PLATINUM", numeral: "II"},
		{points: 10400, tier: "PLATINUM", numeral: "I"},
		{points: 1_000_000, tier: "PLATINUM", numeral: "I"},
	}
	for _, tt := range tests {
		r := RankForPoints(tt.points)
		if r.Tier != tt.tier || r.Numeral != tt.numeral {
			t.Errorf("RankForPoints(%d) = %s, want %s %s", tt.points, r, tt.tier, tt.numeral)
		}
	}
}

func TestRankForPoints_Monotonic(t *testing.T) {
	prev := RankForPoints(-1)
	for p := 0; p <= 12000; p += 7 {
		r := RankForPoints(p)
		if r.Ordinal < prev.Ordinal {
			t.Fatalf("rank dropped from %s to %s at %d points", prev, r, p)
		}
		prev = r
	}
}

func TestRankForPoints_Decoration(t *testing.T) {
	r := RankForPoints(2700)
	if r.String() != "GOLD II" {
		t.Fatalf("String() = %q, want %q", r.String(), "GOLD II")
	}
	if r.Color != "#ffd700" {
		t.Fatalf("Color = %q, want gold", r.Color)
	}
	if r.Points != 2700 || r.Ordinal != 7 {
		t.Fatalf("unexpected rank %+v", r)
	}
}
