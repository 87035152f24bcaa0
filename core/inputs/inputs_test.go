package inputs

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestChecker_CollectsEveryField(t *testing.T) {
	err := For("demo").
		Positive("load", -1).
		Fraction("eta", 1.5).
		NonNegative("redundancy", 2).
		Open("recharge", 24, 0, 24).
		Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("joined error should match ErrInvalid: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"demo: load: must be > 0", "demo: eta: must be in (0, 1]", "demo: recharge: must be in (0, 24)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "redundancy") {
		t.Errorf("redundancy=2 should be accepted:\n%s", msg)
	}
}

func TestChecker_OK(t *testing.T) {
	if err := For("demo").Positive("a", 1).Fraction("b", 1).Closed("c", 0, 0, 1).Err(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestChecker_NotFinite(t *testing.T) {
	err := For("demo").Positive("a", math.NaN()).Err()
	if CodeOf(err) != CodeNotFinite {
		t.Fatalf("code=%q err=%v", CodeOf(err), err)
	}
}

func TestInfeasible(t *testing.T) {
	err := Infeasible("ilmenite", CodeResidenceTime, "dV*t=%.2f must be < 1", 1.2)
	if !errors.Is(err, ErrInvalid) {
		t.Fatal("Infeasible should match ErrInvalid")
	}
	if CodeOf(err) != CodeResidenceTime {
		t.Fatalf("code=%q", CodeOf(err))
	}
	if err.Error() != "ilmenite: dV*t=1.20 must be < 1" {
		t.Fatalf("msg=%q", err.Error())
	}
}
