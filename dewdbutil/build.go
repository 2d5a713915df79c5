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

package dewdbutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dewdb"
)

var log = logrus.StandardLogger()

// Build converts each of the given workbooks (a map of database tag to
// workbook path) and writes the resulting species databases to
// outputDir. Tags are processed in sorted order so repeated runs behave
// identically. A fatal problem with any workbook stops the run; rows
// dropped for malformed data are logged and counted but do not.
func Build(outputDir string, workbooks map[string]string) error {
	if len(workbooks) == 0 {
		return fmt.Errorf("dewdb: no workbooks configured")
	}
	tags := make([]string, 0, len(workbooks))
	for tag := range workbooks {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if err := buildOne(os.ExpandEnv(workbooks[tag]), tag, outputDir); err != nil {
			return err
		}
	}
	return nil
}

func buildOne(workbook, tag, outputDir string) error {
	log.WithFields(logrus.Fields{
		"workbook": workbook,
		"tag":      tag,
	}).Info("converting workbook")

	aqueous, gas, rowErrs, err := dewdb.ConvertWorkbook(workbook)
	if err != nil {
		return err
	}
	for _, rowErr := range rowErrs {
		log.Warn(rowErr)
	}

	aqueousOut := filepath.Join(outputDir, tag+"-aqueous.yaml")
	if err := aqueous.WriteFile(aqueousOut); err != nil {
		return err
	}
	gasOut := filepath.Join(outputDir, tag+"-gas.yaml")
	if err := gas.WriteFile(gasOut); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":    aqueousOut,
		"species": aqueous.Len(),
	}).Info("wrote aqueous species database")
	log.WithFields(logrus.Fields{
		"file":    gasOut,
		"species": gas.Len(),
	}).Info("wrote gas species database")
	if len(rowErrs) > 0 {
		log.WithFields(logrus.Fields{
			"workbook": workbook,
			"rows":     len(rowErrs),
		}).Warn("dropped rows with malformed data")
	}
	return nil
}
