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
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// Composition is the elemental makeup of a chemical species.
type Composition struct {
	elements []string // symbols in order of first appearance
	counts   map[string]int
}

// Count returns the number of atoms of the given element, or zero if the
// element is not part of the composition.
func (c *Composition) Count(element string) int { return c.counts[element] }

// Elements returns the element symbols in order of first appearance in
// the source formula.
func (c *Composition) Elements() []string {
	o := make([]string, len(c.elements))
	copy(o, c.elements)
	return o
}

// Len returns the number of distinct elements.
func (c *Composition) Len() int { return len(c.elements) }

// String formats the composition in the "count:symbol" form the species
// database uses, e.g. "1:C 2:O".
func (c *Composition) String() string {
	var b bytes.Buffer
	for i, el := range c.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%s", c.counts[el], el)
	}
	return b.String()
}

var (
	formulaPhase   = regexp.MustCompile(`[,\s]`)        // phase tags such as ",aq" or ",g"
	parenCharge    = regexp.MustCompile(`\([+-]?\d*\)`) // e.g. "Ag(+)", "Fe(+3)"
	trailingCharge = regexp.MustCompile(`[+\-]\d*$`)    // e.g. "CH3COO-", "SO4-2"
	elementToken   = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)
)

// ParseFormula converts a chemical formula such as "CH3COO-", "SiO2,aq"
// or "Ag(+)" into its element counts. Anything after a comma or space is
// treated as a phase annotation and dropped, and parenthesized or
// trailing charge indicators are stripped before the element tokens are
// counted.
//
// The parser is tuned for the flat formula conventions of the DEW
// sheets: parenthesized group multiplicities (as in "Ca(OH)2") are not
// expanded, so species needing them must supply a pre-flattened formula
// through the special-case override table.
func ParseFormula(formula string) (*Composition, error) {
	f := formulaPhase.Split(formula, 2)[0]
	f = parenCharge.ReplaceAllString(f, "")
	f = trailingCharge.ReplaceAllString(f, "")

	comp := &Composition{counts: make(map[string]int)}
	for _, m := range elementToken.FindAllStringSubmatch(f, -1) {
		el := m[1]
		n := 1
		if m[2] != "" {
			var err error
			if n, err = strconv.Atoi(m[2]); err != nil {
				return nil, fmt.Errorf("dewdb: parsing formula %q: %v", formula, err)
			}
		}
		if n == 0 {
			continue
		}
		if _, ok := comp.counts[el]; !ok {
			comp.elements = append(comp.elements, el)
		}
		comp.counts[el] += n
	}
	if len(comp.elements) == 0 {
		return nil, fmt.Errorf("dewdb: no element symbols in formula %q", formula)
	}
	return comp, nil
}
