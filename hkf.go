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
	"fmt"
	"strings"

	"github.com/ctessum/unit"
)

// specialAqueousSpecies overrides the formula for species whose entry in
// the Chemical column does not map cleanly to a parseable formula, such
// as the background-electrolyte convenience name. The table is consulted
// by the builder before generic formula handling so the parser itself
// stays general and the overrides stay independently testable.
var specialAqueousSpecies = map[string]struct {
	Formula string
	Comment string
}{
	"bG,NaCl":      {"NaCl", "Background electrolyte (bG,NaCl in DEW)."},
	"Glycinate,aq": {"C2H4NO2-", ""},
	"H2CO3,aq":     {"H2CO3", ""},
}

// hkfColumns maps the scaled, calorie-based workbook columns to SI
// values: the "×10ⁿ" display scaling in the column label is undone by
// the recover factor (the sheet shows actual×10ⁿ, so recovery divides by
// 10ⁿ), and the convert factor then takes calories to joules and bars to
// pascals.
var hkfColumns = []struct {
	label   string          // column label as it appears in the sheet
	recover float64         // undoes the display scaling
	convert float64         // calorie/bar-based unit → SI
	dims    unit.Dimensions // dimensions of the recovered SI value
}{
	{"ΔGfo", 1, CalToJoule, JoulePerMole},
	{"ΔHfo", 1, CalToJoule, JoulePerMole},
	{"So", 1, CalToJoule, JoulePerMoleKelvin},
	{"a1 x 10", 1e-1, CalToJoule / BarToPascal, JoulePerMolePascal},
	{"a2 x 10-2", 1e2, CalToJoule, JoulePerMole},
	{"a3", 1, CalToJoule / BarToPascal, JouleKelvinPerMolePascal},
	{"a4 x 10-4", 1e4, CalToJoule, JouleKelvinPerMole},
	{"c1", 1, CalToJoule, JoulePerMoleKelvin},
	{"c2 x 10-4", 1e4, CalToJoule, JouleKelvinPerMole},
	{"ω x 10-5", 1e5, CalToJoule, JoulePerMole},
}

// hkfFields gives the destination record field for each column together
// with the dimensions the field expects. The dimensions are declared
// independently of hkfColumns so that a miswired column fails the
// dimension check instead of silently landing in the wrong field.
func hkfFields(p *HKFParams) []struct {
	field *float64
	label string
	dims  unit.Dimensions
} {
	return []struct {
		field *float64
		label string
		dims  unit.Dimensions
	}{
		{&p.Gf, "ΔGfo", JoulePerMole},
		{&p.Hf, "ΔHfo", JoulePerMole},
		{&p.Sr, "So", JoulePerMoleKelvin},
		{&p.A1, "a1 x 10", JoulePerMolePascal},
		{&p.A2, "a2 x 10-2", JoulePerMole},
		{&p.A3, "a3", JouleKelvinPerMolePascal},
		{&p.A4, "a4 x 10-4", JouleKelvinPerMole},
		{&p.C1, "c1", JoulePerMoleKelvin},
		{&p.C2, "c2 x 10-4", JouleKelvinPerMole},
		{&p.Wref, "ω x 10-5", JoulePerMole},
	}
}

// BuildAqueousSpecies converts the aqueous species table into HKF
// species records. Rows without a usable formula are dropped silently;
// rows with malformed data are dropped with one error per row in the
// returned slice. Row-scoped errors do not stop conversion of the
// remaining rows.
func BuildAqueousSpecies(t *Table) ([]*Species, []error) {
	var species []*Species
	var rowErrs []error
	for i := 0; i < t.Len(); i++ {
		s, err := aqueousRow(t, i)
		if err != nil {
			rowErrs = append(rowErrs, err)
			continue
		}
		if s != nil {
			species = append(species, s)
		}
	}
	return species, rowErrs
}

func aqueousRow(t *Table, i int) (*Species, error) {
	name := t.Text(i, chemicalColumn)
	formula := t.Text(i, SymbolColumn)
	comment := t.Text(i, "Comments")

	if sp, ok := specialAqueousSpecies[name]; ok {
		formula = sp.Formula
		if sp.Comment != "" {
			if comment != "" {
				comment += " | " + sp.Comment
			} else {
				comment = sp.Comment
			}
		}
	}
	if formula == "" || strings.EqualFold(formula, "nan") {
		return nil, nil // no usable formula; drop the row
	}

	comp, err := ParseFormula(formula)
	if err != nil {
		return nil, fmt.Errorf("%v (species %s)", err, name)
	}

	charge := 0.0
	if t.Text(i, "Z") != "" {
		if charge, err = t.Float(i, "Z"); err != nil {
			return nil, fmt.Errorf("%v (species %s)", err, name)
		}
	}

	quantities := make(map[string]*unit.Unit, len(hkfColumns))
	for _, col := range hkfColumns {
		v, err := t.Float(i, col.label)
		if err != nil {
			return nil, fmt.Errorf("%v (species %s)", err, name)
		}
		quantities[col.label] = unit.New(v*col.recover*col.convert, col.dims)
	}

	p := &HKFParams{Charge: charge}
	for _, dst := range hkfFields(p) {
		u := quantities[dst.label]
		if err := u.Check(dst.dims); err != nil {
			return nil, fmt.Errorf("dewdb: %s %q: %v", name, dst.label, err)
		}
		*dst.field = u.Value()
	}

	return &Species{
		Name:           name,
		Formula:        formula,
		Elements:       comp,
		Charge:         charge,
		AggregateState: Aqueous,
		Comment:        comment,
		HKF:            p,
	}, nil
}
