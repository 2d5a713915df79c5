/*
Copyright © 2024 the DEWDB authors.
This file is part of DEWDB.

DEWDB is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DEWDB is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DEWDB.  If not, see <http://www.gnu.org/licenses/>.
*/

package dewdb

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNasaFromCpPolynomial(t *testing.T) {
	tests := []struct {
		label   string
		a, b, c float64 // Cp(T) = a + b·T + c·T² [J/(mol·K)]
		hf, s   float64
		tmax    float64
	}{
		{"CO2(g)", 44.22488, 8.7864e-3, -8.61904e-5, -393509.384, 213.73964, 2500},
		{"Ar(g)", 20.786, 0, 0, 0, 154.73688, 2000},
		{"CH4(g)", 23.64, 47.86e-3, -1.92e-5, -74810, 186.26, 1500},
	}
	for _, test := range tests {
		params := NasaFromCpPolynomial(test.a, test.b, test.c, test.hf,
			test.s, Tref, test.tmax, test.label)
		if len(params.Polynomials) != 1 {
			t.Fatalf("%s: got %d intervals, want 1", test.label, len(params.Polynomials))
		}
		p := params.Polynomials[0]

		if p.Tmin != Tref || p.Tmax != test.tmax {
			t.Errorf("%s: interval [%g, %g], want [%g, %g]",
				test.label, p.Tmin, p.Tmax, Tref, test.tmax)
		}
		if p.A4 != 0 || p.A5 != 0 || p.A6 != 0 || p.A7 != 0 {
			t.Errorf("%s: higher-order coefficients must be zero", test.label)
		}
		if p.State != Gas || p.Label != test.label {
			t.Errorf("%s: state %q label %q", test.label, p.State, p.Label)
		}

		// The polynomial reproduces the quadratic heat-capacity law
		// exactly across the interval.
		for _, T := range []float64{Tref, 400, 750, 1200, test.tmax} {
			if T > test.tmax {
				continue
			}
			want := test.a + test.b*T + test.c*T*T
			if !floats.EqualWithinAbsOrRel(p.Cp(T), want, 1e-10, 1e-12) {
				t.Errorf("%s: Cp(%g) = %g, want %g", test.label, T, p.Cp(T), want)
			}
		}

		// The integration constants pin H and S at the reference
		// temperature.
		if !floats.EqualWithinAbsOrRel(p.H(Tref), test.hf, 1e-8, 1e-8) {
			t.Errorf("%s: H(Tref) = %g, want %g", test.label, p.H(Tref), test.hf)
		}
		if !floats.EqualWithinAbsOrRel(p.S(Tref), test.s, 1e-8, 1e-8) {
			t.Errorf("%s: S(Tref) = %g, want %g", test.label, p.S(Tref), test.s)
		}

		if params.DHf != test.hf || params.H0 != test.hf || params.T0 != Tref {
			t.Errorf("%s: reference block dHf=%g H0=%g T0=%g",
				test.label, params.DHf, params.H0, params.T0)
		}
	}
}

func TestBuildGasSpecies(t *testing.T) {
	path := writeTestWorkbook(t, t.TempDir())
	table, err := ReadTable(path, GasSheet, SpeciesNameColumn)
	if err != nil {
		t.Fatal(err)
	}
	species, rowErrs := BuildGasSpecies(table)
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(species) != 2 {
		t.Fatalf("got %d species, want 2", len(species))
	}

	co2 := findSpecies(t, species, "CO2(g)")
	if co2.Formula != "CO2" {
		t.Errorf("formula: got %q, want CO2", co2.Formula)
	}
	if co2.Key() != "CO2(g)" {
		t.Errorf("key: got %q, want CO2(g)", co2.Key())
	}
	if co2.Charge != 0 {
		t.Errorf("charge: got %g, want 0", co2.Charge)
	}
	if co2.AggregateState != Gas {
		t.Errorf("aggregate state: got %q, want %q", co2.AggregateState, Gas)
	}
	if co2.Elements.String() != "1:C 2:O" {
		t.Errorf("elements: got %q", co2.Elements.String())
	}

	p := co2.Nasa.Polynomials[0]
	hf := -94051 * CalToJoule
	s := 51.085 * CalToJoule
	if !floats.EqualWithinAbsOrRel(p.H(Tref), hf, 1e-8, 1e-8) {
		t.Errorf("H(Tref) = %g, want %g", p.H(Tref), hf)
	}
	if !floats.EqualWithinAbsOrRel(p.S(Tref), s, 1e-8, 1e-8) {
		t.Errorf("S(Tref) = %g, want %g", p.S(Tref), s)
	}
	// The b and c columns carry ×10³ and ×10⁻⁵ display scaling.
	wantCp := 10.57*CalToJoule + 2.10*1e-3*CalToJoule*500 + -2.06*1e-5*CalToJoule*500*500
	if !floats.EqualWithinAbsOrRel(p.Cp(500), wantCp, 1e-10, 1e-12) {
		t.Errorf("Cp(500) = %g, want %g", p.Cp(500), wantCp)
	}
	if p.Tmax != 2500 {
		t.Errorf("Tmax: got %g, want 2500", p.Tmax)
	}

	ar := findSpecies(t, species, "Ar(g)")
	if ar.Elements.String() != "1:Ar" {
		t.Errorf("Ar elements: got %q", ar.Elements.String())
	}
	if got := ar.Nasa.Polynomials[0].Cp(1000); !floats.EqualWithinAbsOrRel(got, 4.968*CalToJoule, 1e-10, 1e-12) {
		t.Errorf("Ar Cp(1000) = %g, want %g", got, 4.968*CalToJoule)
	}
}
