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

import yaml "gopkg.in/yaml.v2"

// Aggregate states used as part of species identity.
const (
	Aqueous = "Aqueous"
	Gas     = "Gas"
)

// Species is one entry of an output species database. Records are built
// once per conversion run and not mutated afterwards.
type Species struct {
	Name           string
	Formula        string
	Elements       *Composition
	Charge         float64
	AggregateState string

	// Comment carries non-functional documentation from the workbook's
	// Comments cell and the special-case override table.
	Comment string

	// Exactly one of HKF (aqueous species) and Nasa (gas species) is
	// set.
	HKF  *HKFParams
	Nasa *NasaParams
}

// Key returns the name the species is stored under in the database.
// Gas species get a "(g)" suffix so that they cannot collide with an
// aqueous or solid species sharing the same bare formula.
func (s *Species) Key() string {
	if s.AggregateState == Gas {
		return s.Formula + "(g)"
	}
	return s.Formula
}

// HKFParams holds revised Helgeson-Kirkham-Flowers equation-of-state
// parameters for an aqueous species, in SI units.
type HKFParams struct {
	Gf   float64 `yaml:"Gf"`   // formation Gibbs energy at 298.15 K, 1 bar [J/mol]
	Hf   float64 `yaml:"Hf"`   // formation enthalpy [J/mol]
	Sr   float64 `yaml:"Sr"`   // entropy [J/(mol·K)]
	A1   float64 `yaml:"a1"`   // [J/(mol·Pa)]
	A2   float64 `yaml:"a2"`   // [J/mol]
	A3   float64 `yaml:"a3"`   // [(J·K)/(mol·Pa)]
	A4   float64 `yaml:"a4"`   // [(J·K)/mol]
	C1   float64 `yaml:"c1"`   // [J/(mol·K)]
	C2   float64 `yaml:"c2"`   // [(J·K)/mol]
	Wref float64 `yaml:"wref"` // Born omega at the reference state [J/mol]

	// Charge is a redundant copy of the species charge, read by the
	// downstream Born-function evaluator.
	Charge float64 `yaml:"charge"`
}

// NasaParams holds a single-interval NASA polynomial parameterization
// of ideal-gas standard-state properties.
type NasaParams struct {
	DHf float64 `yaml:"dHf"` // formation enthalpy at 298.15 K [J/mol]
	DH0 float64 `yaml:"dH0"`
	H0  float64 `yaml:"H0"` // enthalpy at T0 [J/mol]
	T0  float64 `yaml:"T0"` // [K]

	Polynomials []NasaPolynomial `yaml:"polynomials"`
}

// NasaPolynomial is one temperature interval of a NASA 7-coefficient
// polynomial.
type NasaPolynomial struct {
	Tmin  float64 `yaml:"Tmin"`
	Tmax  float64 `yaml:"Tmax"`
	Label string  `yaml:"label"`
	State string  `yaml:"state"`
	A1    float64 `yaml:"a1"`
	A2    float64 `yaml:"a2"`
	A3    float64 `yaml:"a3"`
	A4    float64 `yaml:"a4"`
	A5    float64 `yaml:"a5"`
	A6    float64 `yaml:"a6"`
	A7    float64 `yaml:"a7"`
	B1    float64 `yaml:"b1"`
	B2    float64 `yaml:"b2"`
}

// MarshalYAML writes the species fields in the fixed order the
// downstream database reader documents.
func (s *Species) MarshalYAML() (interface{}, error) {
	items := yaml.MapSlice{
		{Key: "Name", Value: s.Name},
		{Key: "Formula", Value: s.Formula},
		{Key: "Elements", Value: s.Elements.String()},
		{Key: "Charge", Value: s.Charge},
		{Key: "AggregateState", Value: s.AggregateState},
	}
	switch {
	case s.HKF != nil:
		items = append(items, yaml.MapItem{
			Key:   "StandardThermoModel",
			Value: yaml.MapSlice{{Key: "HKF", Value: s.HKF}},
		})
	case s.Nasa != nil:
		items = append(items, yaml.MapItem{
			Key:   "StandardThermoModel",
			Value: yaml.MapSlice{{Key: "Nasa", Value: s.Nasa}},
		})
	}
	if s.Comment != "" {
		items = append(items, yaml.MapItem{Key: "Comment", Value: s.Comment})
	}
	return items, nil
}
