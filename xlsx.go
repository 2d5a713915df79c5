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
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/tealeg/xlsx"
)

// Names of the fixed-layout sheets and columns in the DEW workbooks.
const (
	// AqueousSheet holds the aqueous species table.
	AqueousSheet = "Aqueous Species Table"
	// GasSheet holds the gas species table.
	GasSheet = "Gas Table"

	// SymbolColumn holds the chemical formula of an aqueous species.
	SymbolColumn = "Symbol"
	// SpeciesNameColumn holds the English name of a gas species.
	SpeciesNameColumn = "SpeciesName"

	// chemicalColumn identifies species rows; rows without an entry in
	// it are not species data.
	chemicalColumn = "Chemical"

	headerRow = 2 // physical row holding the column labels
	dataRow   = 4 // first data row; the rows between hold display units
)

// workbookCache holds previously opened workbook files so the aqueous
// and gas passes over the same workbook only open it once.
var workbookCache *requestcache.Cache

var loadWorkbookOnce sync.Once

func loadWorkbook(fileName string) (*xlsx.File, error) {
	loadWorkbookOnce.Do(func() {
		workbookCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			f, err := xlsx.OpenFile(req.(string))
			if err != nil {
				return nil, fmt.Errorf("dewdb: opening workbook: %v", err)
			}
			return f, nil
		}, runtime.GOMAXPROCS(-1), requestcache.Memory(100))
	})
	r := workbookCache.NewRequest(context.Background(), fileName, fileName)
	fI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return fI.(*xlsx.File), nil
}

// Table is a fixed-layout species table read from a DEW workbook sheet.
type Table struct {
	// Sheet is the name of the sheet the table was read from.
	Sheet string

	columns []string
	rows    [][]string
}

// ReadTable reads the named sheet from the workbook at fileName. The
// sheet's third physical row supplies the column labels and data starts
// at the fifth; the leading row-index column is dropped. Rows without an
// entry in the "Chemical" column are discarded.
//
// formulaColumn is the label expected for the second data column. The
// lookup is two-step: if no column carries that label (the header text
// varies between workbook revisions, and some revisions leave it blank),
// the column at that fixed position is renamed to it, so that later
// lookups can go by name.
//
// A missing sheet, or a sheet with no rows carrying a Chemical entry, is
// an unrecoverable configuration error.
func ReadTable(fileName, sheet, formulaColumn string) (*Table, error) {
	f, err := loadWorkbook(fileName)
	if err != nil {
		return nil, err
	}
	s, ok := f.Sheet[sheet]
	if !ok {
		return nil, fmt.Errorf("dewdb: reading table from %s: no sheet %q", fileName, sheet)
	}

	columns := make([]string, 0, s.MaxCol-1)
	for i := 1; i < s.MaxCol; i++ {
		columns = append(columns, strings.TrimSpace(s.Cell(headerRow, i).Value))
	}
	t := &Table{Sheet: sheet, columns: columns}

	chem, ok := t.index(chemicalColumn)
	if !ok {
		return nil, fmt.Errorf("dewdb: sheet %q has no %q column", sheet, chemicalColumn)
	}

	for r := dataRow; r < s.MaxRow; r++ {
		row := make([]string, len(columns))
		for i := range columns {
			row[i] = strings.TrimSpace(s.Cell(r, i+1).Value)
		}
		if row[chem] == "" {
			continue
		}
		t.rows = append(t.rows, row)
	}
	if len(t.rows) == 0 {
		return nil, fmt.Errorf("dewdb: sheet %q has no rows with a %s entry", sheet, chemicalColumn)
	}

	if _, ok := t.index(formulaColumn); !ok {
		if len(t.columns) < 2 {
			return nil, fmt.Errorf("dewdb: sheet %q has no %q column", sheet, formulaColumn)
		}
		t.columns[1] = formulaColumn
	}
	return t, nil
}

func (t *Table) index(name string) (int, bool) {
	for i, c := range t.columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the column labels in sheet order.
func (t *Table) Columns() []string {
	o := make([]string, len(t.columns))
	copy(o, t.columns)
	return o
}

// Text returns the trimmed text of the given cell, or "" if the column
// does not exist or the cell is empty.
func (t *Table) Text(row int, column string) string {
	i, ok := t.index(column)
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Float parses the given cell as a number. An empty or malformed cell is
// an error naming the sheet, row and column; it is never coerced to
// zero, since zero is a physically meaningful value for several of the
// parameters read through this method.
func (t *Table) Float(row int, column string) (float64, error) {
	i, ok := t.index(column)
	if !ok {
		return 0, fmt.Errorf("dewdb: sheet %q has no %q column", t.Sheet, column)
	}
	v := t.rows[row][i]
	if v == "" {
		return 0, fmt.Errorf("dewdb: sheet %q row %d: column %q is empty", t.Sheet, row+1, column)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("dewdb: sheet %q row %d: column %q: %v", t.Sheet, row+1, column, err)
	}
	return f, nil
}
