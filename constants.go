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

import "github.com/ctessum/unit"

// Physical constants shared by every conversion step. The same values
// must be used at fit time and consumption time: a consumer evaluating
// the NASA polynomials with a different gas constant silently shifts
// H and S away from their reference values.
const (
	// CalToJoule converts thermochemical calories to joules.
	CalToJoule = 4.184

	// BarToPascal converts bars to pascals.
	BarToPascal = 1.0e5

	// GasConstant is the molar gas constant [J/(mol·K)], CODATA 2018.
	GasConstant = 8.31446261815324

	// Tref is the reference temperature [K] for standard-state
	// thermodynamic properties.
	Tref = 298.15
)

// MoleDim is the dimension representing amount of substance.
var MoleDim unit.Dimension

// Dimensions of the molar quantities stored in the species records.
var (
	JoulePerMole             unit.Dimensions // J mol⁻¹
	JoulePerMoleKelvin       unit.Dimensions // J mol⁻¹ K⁻¹
	JoulePerMolePascal       unit.Dimensions // J mol⁻¹ Pa⁻¹
	JouleKelvinPerMole       unit.Dimensions // J K mol⁻¹
	JouleKelvinPerMolePascal unit.Dimensions // J K mol⁻¹ Pa⁻¹
)

func init() {
	MoleDim = unit.NewDimension("mol")

	JoulePerMole = unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, MoleDim: -1}
	JoulePerMoleKelvin = unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2,
		unit.TemperatureDim: -1, MoleDim: -1}
	JouleKelvinPerMole = unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2,
		unit.TemperatureDim: 1, MoleDim: -1}
	// J/Pa reduces to m³, so these are molar volumes (times kelvins).
	JoulePerMolePascal = unit.Dimensions{
		unit.LengthDim: 3, MoleDim: -1}
	JouleKelvinPerMolePascal = unit.Dimensions{
		unit.LengthDim: 3, unit.TemperatureDim: 1, MoleDim: -1}
}
