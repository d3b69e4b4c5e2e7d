package elem_test

import (
	"testing"

	. "github.com/andrew-torda/prot3d/pdb/elem"
)

func TestIsStandardResidue(t *testing.T) {
	var tests = []struct {
		code string
		want bool
	}{
		{"ALA", true},
		{"gly", true},
		{"AALA", true}, // alternate location glued on
		{"BSER", true},
		{"HOH", false},
		{"ZN", false},
		{"HEM", false},
		{"XALAX", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStandardResidue(tt.code); got != tt.want {
			t.Errorf("IsStandardResidue(%q) = %v", tt.code, got)
		}
	}
}

func TestIsMetal(t *testing.T) {
	var tests = []struct {
		sym            string
		transitionOnly bool
		want           bool
	}{
		{"ZN", true, true},
		{"Zn", false, true},
		{"Fe", true, true},
		{"MG", true, false},
		{"MG", false, true},
		{"Na", false, true},
		{"C", false, false},
		{"S", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := IsMetal(tt.sym, tt.transitionOnly); got != tt.want {
			t.Errorf("IsMetal(%q, %v) = %v", tt.sym, tt.transitionOnly, got)
		}
	}
}

func TestSymbolFromName(t *testing.T) {
	for _, tt := range []struct{ name, want string }{
		{"CA", "C"}, {"N", "N"}, {"OXT", "O"}, {"1HB", "H"},
		{"ZN", "Zn"}, {"CL", "Cl"}, {"SE", "Se"}, {"", ""},
	} {
		if got := SymbolFromName(tt.name); got != tt.want {
			t.Errorf("SymbolFromName(%q) = %q wanted %q", tt.name, got, tt.want)
		}
	}
}

func TestCovRad(t *testing.T) {
	if r := CovRad("C"); r != 0.76 {
		t.Error("carbon radius", r)
	}
	if r := CovRad("ZN"); r != 1.22 {
		t.Error("zinc radius", r)
	}
	if r := CovRad("Xx"); r <= 0 {
		t.Error("unknown element should still have a radius")
	}
}
