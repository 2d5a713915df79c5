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
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Database is an ordered collection of species records. Species keep
// their insertion (workbook row) order so that repeated conversions of
// an unchanged workbook emit byte-identical output.
type Database struct {
	species []*Species
	index   map[string]int
}

// Add inserts s under its key. A species whose key is already present
// replaces the earlier record in place, keeping its position.
func (d *Database) Add(s *Species) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[s.Key()]; ok {
		d.species[i] = s
		return
	}
	d.index[s.Key()] = len(d.species)
	d.species = append(d.species, s)
}

// Get returns the species stored under key, or nil if there is none.
func (d *Database) Get(key string) *Species {
	i, ok := d.index[key]
	if !ok {
		return nil
	}
	return d.species[i]
}

// Keys returns the species keys in insertion order.
func (d *Database) Keys() []string {
	o := make([]string, len(d.species))
	for i, s := range d.species {
		o[i] = s.Key()
	}
	return o
}

// Len returns the number of species in the database.
func (d *Database) Len() int { return len(d.species) }

// MarshalYAML emits {Species: {key: record}} with the keys in insertion
// order; keys are written literally, never re-sorted.
func (d *Database) MarshalYAML() (interface{}, error) {
	items := make(yaml.MapSlice, 0, len(d.species))
	for _, s := range d.species {
		items = append(items, yaml.MapItem{Key: s.Key(), Value: s})
	}
	return yaml.MapSlice{{Key: "Species", Value: items}}, nil
}

// Write serializes the database as YAML.
func (d *Database) Write(w io.Writer) error {
	b, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("dewdb: marshaling species database: %v", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("dewdb: writing species database: %v", err)
	}
	return nil
}

// WriteFile writes the database to the file at path.
func (d *Database) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dewdb: %v", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ConvertWorkbook reads the aqueous and gas species tables from the
// workbook at fileName and builds the two species databases. Row-scoped
// conversion problems are returned in rowErrs and do not stop the rest
// of the conversion; err is non-nil only for fatal problems such as a
// missing workbook or sheet, in which case no partial databases are
// returned.
func ConvertWorkbook(fileName string) (aqueous, gas *Database, rowErrs []error, err error) {
	at, err := ReadTable(fileName, AqueousSheet, SymbolColumn)
	if err != nil {
		return nil, nil, nil, err
	}
	gt, err := ReadTable(fileName, GasSheet, SpeciesNameColumn)
	if err != nil {
		return nil, nil, nil, err
	}

	aqSpecies, aqErrs := BuildAqueousSpecies(at)
	gasSpecies, gasErrs := BuildGasSpecies(gt)

	aqueous = new(Database)
	for _, s := range aqSpecies {
		aqueous.Add(s)
	}
	gas = new(Database)
	for _, s := range gasSpecies {
		gas.Add(s)
	}
	return aqueous, gas, append(aqErrs, gasErrs...), nil
}
