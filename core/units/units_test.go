package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	if SecondsPerDay != 86400 {
		t.Fatalf("SecondsPerDay=%v", SecondsPerDay)
	}
	if got := KJPerDayToKW(86400); got != 1 {
		t.Fatalf("KJPerDayToKW(86400)=%v want 1", got)
	}
	if got := KgPerMol(MolarH2O); math.Abs(got-0.018) > 1e-15 {
		t.Fatalf("KgPerMol(H2O)=%v", got)
	}
}

func TestElectrolysisSplit(t *testing.T) {
	// O2 + H2 recovered from water must add back up to the water mass.
	if got := OxygenPerWater + HydrogenPerWater; math.Abs(got-1) > 1e-12 {
		t.Fatalf("O2+H2 per water = %v, want 1", got)
	}
}
