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
	"path/filepath"
	"strings"
	"testing"

	"github.com/tealeg/xlsx"
)

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		cell := row.AddCell()
		cell.Value = v
	}
}

// writeTestWorkbook writes a workbook with the fixed DEW sheet layout
// (title row, blank row, header row, units row, data) into dir and
// returns its path.
func writeTestWorkbook(t *testing.T, dir string) string {
	f := xlsx.NewFile()

	aq, err := f.AddSheet(AqueousSheet)
	if err != nil {
		t.Fatal(err)
	}
	addRow(aq, "", "Aqueous Species")
	addRow(aq)
	addRow(aq, "", "Chemical", "", "ΔGfo ", "ΔHfo", "So", "Vo", "Cpo",
		"a1 x 10", "a2 x 10-2", "a3", "a4 x 10-4", "c1", "c2 x 10-4",
		"ω x 10-5", "Z", "Comments")
	addRow(aq, "", "", "", "cal/mol", "cal/mol", "cal/(mol K)", "cm3/mol",
		"cal/(mol K)", "cal/(mol bar)", "cal/mol", "cal K/(mol bar)",
		"cal K/mol", "cal/(mol K)", "cal K/mol", "cal/mol", "", "")
	addRow(aq, "1", "CO2(0)", "CO2", "-92250", "-98900", "28.1", "32.8",
		"48.9", "6.9630", "7.0", "2.8", "-2.8", "40.0", "8.8", "-0.8000",
		"0", "")
	addRow(aq, "2", "HCO3(-)", "HCO3-", "-140282", "-164898", "23.53",
		"24.6", "-8.5", "7.5621", "1.1505", "1.2346", "-2.8266",
		"12.9395", "-4.7579", "1.2733", "-1", "")
	addRow(aq, "3", "bG,NaCl", "nan", "-92910", "-96120", "28.0", "24.0",
		"10.0", "5.0360", "4.7365", "4.9270", "-2.8100", "10.9", "-1.3",
		"-0.3800", "0", "ω regression")
	addRow(aq, "4", "Mystery(0)", "", "-1000", "-2000", "3.0", "4.0",
		"5.0", "6.0", "7.0", "8.0", "9.0", "10.0", "11.0", "12.0", "0", "")
	addRow(aq, "5", "Broken(0)", "Xe", "-500", "-600", "10", "20", "30",
		"n/a", "1", "2", "3", "4", "5", "0.5", "0", "")
	addRow(aq, "6", "", "Huh", "-1", "-2", "3", "4", "5", "6", "7", "8",
		"9", "10", "11", "12", "0", "")

	gas, err := f.AddSheet(GasSheet)
	if err != nil {
		t.Fatal(err)
	}
	addRow(gas, "", "Gases")
	addRow(gas)
	addRow(gas, "", "Chemical", "", "ΔGfo ", "ΔHfo", "So", "a", "b x 103",
		"c x 10-5", "T")
	addRow(gas, "", "", "", "cal/mol", "cal/mol", "cal/(mol K)",
		"cal/(mol K)", "cal/(mol K2)", "cal K/mol", "K")
	addRow(gas, "1", "CO2,g", "CARBON-DIOXIDE", "-94254", "-94051",
		"51.085", "10.57", "2.10", "-2.06", "2500")
	addRow(gas, "2", "Ar,g", "ARGON", "0", "0", "36.983", "4.968", "0",
		"0", "2000")

	path := filepath.Join(dir, "test_dew.xlsx")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTable(t *testing.T) {
	path := writeTestWorkbook(t, t.TempDir())

	table, err := ReadTable(path, AqueousSheet, SymbolColumn)
	if err != nil {
		t.Fatal(err)
	}
	// Rows without a Chemical entry are dropped at load time.
	if table.Len() != 5 {
		t.Errorf("got %d rows, want 5", table.Len())
	}
	// The unlabeled second column is renamed to the formula column.
	if got := table.Text(0, SymbolColumn); got != "CO2" {
		t.Errorf("Symbol: got %q, want %q", got, "CO2")
	}
	if got := table.Text(0, chemicalColumn); got != "CO2(0)" {
		t.Errorf("Chemical: got %q, want %q", got, "CO2(0)")
	}
	// Header labels are trimmed.
	v, err := table.Float(0, "ΔGfo")
	if err != nil {
		t.Fatal(err)
	}
	if v != -92250 {
		t.Errorf("ΔGfo: got %g, want -92250", v)
	}
}

func TestReadTableMissingSheet(t *testing.T) {
	path := writeTestWorkbook(t, t.TempDir())
	_, err := ReadTable(path, "Solid Table", SymbolColumn)
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
	if !strings.Contains(err.Error(), "Solid Table") {
		t.Errorf("error %q does not name the missing sheet", err)
	}
}

func TestReadTableNoRows(t *testing.T) {
	f := xlsx.NewFile()
	s, err := f.AddSheet(AqueousSheet)
	if err != nil {
		t.Fatal(err)
	}
	addRow(s, "", "Title")
	addRow(s)
	addRow(s, "", "Chemical", "", "ΔGfo")
	addRow(s, "", "", "", "cal/mol")
	addRow(s, "1", "", "", "-92250") // no Chemical entry
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadTable(path, AqueousSheet, SymbolColumn); err == nil {
		t.Fatal("expected error for table without species rows")
	}
}

func TestFloatErrors(t *testing.T) {
	path := writeTestWorkbook(t, t.TempDir())
	table, err := ReadTable(path, AqueousSheet, SymbolColumn)
	if err != nil {
		t.Fatal(err)
	}

	// Row 4 ("Broken(0)") has a malformed a1 cell.
	if _, err := table.Float(4, "a1 x 10"); err == nil {
		t.Error("expected error for malformed cell")
	} else if !strings.Contains(err.Error(), "a1 x 10") {
		t.Errorf("error %q does not name the column", err)
	}

	if _, err := table.Float(0, "NoSuchColumn"); err == nil {
		t.Error("expected error for missing column")
	}
}
