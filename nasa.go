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
	"math"
	"strings"
)

// NasaFromCpPolynomial builds the single-interval NASA parameter block
// whose heat capacity
//
//	Cp(T) = a + b·T + c·T²  [J/(mol·K)]
//
// holds exactly on [Tmin, Tmax] and whose enthalpy and entropy match Hf
// and S [J/mol, J/(mol·K)] at Tref. The fit is closed form: with a4..a7
// fixed at zero, the two integration constants b1 and b2 are fully
// determined by the reference values, so there is no optimization and no
// residual.
func NasaFromCpPolynomial(a, b, c, Hf, S, Tmin, Tmax float64, label string) *NasaParams {
	p := NasaPolynomial{
		Tmin:  Tmin,
		Tmax:  Tmax,
		Label: label,
		State: Gas,
		A1:    a / GasConstant,
		A2:    b / GasConstant,
		A3:    c / GasConstant,
	}

	// With a4..a7 = 0:
	//   H(T)/(R·T) = a1 + a2·T/2 + a3·T²/3 + b1/T
	//   S(T)/R     = a1·ln T + a2·T + a3·T²/2 + b2
	phiH := p.A1 + p.A2*Tref/2 + p.A3*Tref*Tref/3
	phiS := p.A1*math.Log(Tref) + p.A2*Tref + p.A3*Tref*Tref/2
	p.B1 = Hf/GasConstant - phiH*Tref // enforces H(Tref) = Hf
	p.B2 = S/GasConstant - phiS       // enforces S(Tref) = S

	return &NasaParams{
		DHf:         Hf,
		DH0:         0,
		H0:          Hf,
		T0:          Tref,
		Polynomials: []NasaPolynomial{p},
	}
}

// Cp returns the heat capacity [J/(mol·K)] at temperature T [K].
func (p *NasaPolynomial) Cp(T float64) float64 {
	return GasConstant * (p.A1 + p.A2*T + p.A3*T*T + p.A4*T*T*T + p.A5*T*T*T*T)
}

// H returns the enthalpy [J/mol] at temperature T [K].
func (p *NasaPolynomial) H(T float64) float64 {
	return GasConstant * T * (p.A1 + p.A2*T/2 + p.A3*T*T/3 + p.A4*T*T*T/4 + p.A5*T*T*T*T/5 + p.B1/T)
}

// S returns the entropy [J/(mol·K)] at temperature T [K].
func (p *NasaPolynomial) S(T float64) float64 {
	return GasConstant * (p.A1*math.Log(T) + p.A2*T + p.A3*T*T/2 + p.A4*T*T*T/3 + p.A5*T*T*T*T/4 + p.B2)
}

// Columns of the gas table holding the Maier-Kelley-style quadratic
// heat-capacity coefficients and their display scaling. Unlike the
// aqueous HKF columns, the b and c labels state the multiplier the
// recovered value carries, so recovery multiplies by it directly.
var gasCpColumns = struct {
	a, b, c, tmax string
	bScale        float64
	cScale        float64
}{
	a:      "a",
	b:      "b x 103",
	c:      "c x 10-5",
	tmax:   "T",
	bScale: 1e-3,
	cScale: 1e-5,
}

// BuildGasSpecies converts the gas table into ideal-gas species records
// whose NASA polynomials reproduce the table's quadratic heat-capacity
// law exactly. Error semantics match BuildAqueousSpecies.
func BuildGasSpecies(t *Table) ([]*Species, []error) {
	var species []*Species
	var rowErrs []error
	for i := 0; i < t.Len(); i++ {
		s, err := gasRow(t, i)
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

func gasRow(t *Table, i int) (*Species, error) {
	chem := t.Text(i, chemicalColumn) // e.g. "Ar,g", "CO2,g"
	if strings.EqualFold(chem, "nan") {
		return nil, nil
	}
	formula := strings.TrimSpace(strings.SplitN(chem, ",", 2)[0])
	name := chem
	if strings.HasSuffix(chem, ",g") {
		name = strings.TrimSuffix(chem, ",g") + "(g)"
	}

	comp, err := ParseFormula(formula)
	if err != nil {
		return nil, fmt.Errorf("%v (species %s)", err, name)
	}

	vals := make(map[string]float64)
	for _, col := range []string{"ΔHfo", "So", gasCpColumns.a, gasCpColumns.b, gasCpColumns.c, gasCpColumns.tmax} {
		if vals[col], err = t.Float(i, col); err != nil {
			return nil, fmt.Errorf("%v (species %s)", err, name)
		}
	}

	hf := vals["ΔHfo"] * CalToJoule
	s := vals["So"] * CalToJoule
	a := vals[gasCpColumns.a] * CalToJoule
	b := vals[gasCpColumns.b] * gasCpColumns.bScale * CalToJoule
	c := vals[gasCpColumns.c] * gasCpColumns.cScale * CalToJoule
	tmax := vals[gasCpColumns.tmax]

	return &Species{
		Name:           name,
		Formula:        formula,
		Elements:       comp,
		Charge:         0,
		AggregateState: Gas,
		Nasa:           NasaFromCpPolynomial(a, b, c, hf, s, Tref, tmax, name),
	}, nil
}
