package report

import "testing"

func TestReportLookup(t *testing.T) {
	r := Report{
		Model:   "demo",
		Inputs:  []Figure{F("load", "Load", "kg/day", 10)},
		Figures: []Figure{F("power", "Power", "kW", 2), F("mass", "Mass", "kg", 5)},
	}
	if f, ok := r.Get("mass"); !ok || f.Value != 5 {
		t.Fatalf("Get(mass)=%v,%v", f, ok)
	}
	if _, ok := r.Get("nope"); ok {
		t.Fatal("Get(nope) should miss")
	}
	if f, ok := r.Input("load"); !ok || f.Unit != "kg/day" {
		t.Fatalf("Input(load)=%v,%v", f, ok)
	}
	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "power" || keys[1] != "mass" {
		t.Fatalf("Keys=%v", keys)
	}
	if r.Failed() {
		t.Fatal("should not be failed")
	}
}
