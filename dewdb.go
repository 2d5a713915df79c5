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

// Package dewdb converts the species tables of DEW (Deep Earth Water)
// spreadsheet workbooks into YAML thermodynamic databases.
//
// Aqueous species are parameterized with the Helgeson-Kirkham-Flowers
// (HKF) equation of state and gas species with single-interval NASA
// heat-capacity polynomials. All emitted values are in SI (joule-based)
// units; the calorie-based, display-scaled workbook columns are
// converted during extraction.
package dewdb

// Version gives the version number of this version of DEWDB.
const Version = "0.2.0"
