// This file holds the monoisotopic isotope table and mass computation.
package composition

import "fmt"

// monoisotopicMass maps element symbols to the mass of their most abundant
// isotope, in Daltons.
var monoisotopicMass = map[string]float64{
	"H":  1.00782503207,
	"C":  12.0,
	"N":  14.0030740048,
	"O":  15.99491461956,
	"S":  31.97207100,
	"P":  30.97376163,
	"F":  18.99840322,
	"Cl": 34.96885268,
	"Br": 78.9183371,
	"I":  126.904473,
	"Na": 22.9897692809,
	"K":  38.96370668,
	"Ca": 39.96259098,
}

// Mass returns the monoisotopic mass of c in Daltons.
// Unknown element symbols yield ErrUnknownElement.
// Complexity: O(k) distinct elements.
func (c Composition) Mass() (float64, error) {
	var total float64
	for sym, count := range c {
		m, ok := monoisotopicMass[sym]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownElement, sym)
		}
		total += m * float64(count)
	}

	return total, nil
}

// MustMass is Mass for compositions known to contain only table elements.
func (c Composition) MustMass() float64 {
	m, err := c.Mass()
	if err != nil {
		panic(err)
	}

	return m
}
