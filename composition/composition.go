// This file declares the Composition type, its arithmetic, and the
// chemical-formula parser.
package composition

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for composition operations.
var (
	// ErrBadFormula indicates an empty or malformed chemical formula string.
	ErrBadFormula = errors.New("composition: bad formula")

	// ErrUnknownElement indicates an element symbol missing from the isotope table.
	ErrUnknownElement = errors.New("composition: unknown element")
)

// Composition is a signed integer bag of element counts, keyed by element
// symbol ("H", "C", "O", ...). Negative counts are legal: they arise as
// attachment losses before being folded into a neighbor's composition.
type Composition map[string]int

// New returns an empty Composition.
func New() Composition { return make(Composition) }

// Parse converts a chemical formula such as "C6H12O6" or "COCH3" into a
// Composition. Repeated symbols accumulate; counts default to 1 and may be
// negative ("H-2O" removes two hydrogens and adds one oxygen).
// Complexity: O(len(formula)).
func Parse(formula string) (Composition, error) {
	if formula == "" {
		return nil, fmt.Errorf("%w: empty string", ErrBadFormula)
	}

	c := New()
	i, n := 0, len(formula)
	for i < n {
		// 1. Element symbol: one uppercase letter plus optional lowercase tail.
		if formula[i] < 'A' || formula[i] > 'Z' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrBadFormula, formula[i], i)
		}
		j := i + 1
		for j < n && formula[j] >= 'a' && formula[j] <= 'z' {
			j++
		}
		symbol := formula[i:j]

		// 2. Optional signed count.
		k := j
		if k < n && formula[k] == '-' {
			k++
		}
		for k < n && formula[k] >= '0' && formula[k] <= '9' {
			k++
		}
		count := 1
		if k > j {
			parsed, err := strconv.Atoi(formula[j:k])
			if err != nil {
				return nil, fmt.Errorf("%w: count after %q", ErrBadFormula, symbol)
			}
			count = parsed
		}

		c[symbol] += count
		i = k
	}
	c.normalize()

	return c, nil
}

// MustParse is Parse for package-level constants; it panics on bad input.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic(err)
	}

	return c
}

// Clone returns an independent copy of c.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for sym, count := range c {
		out[sym] = count
	}

	return out
}

// Add folds other into c in place and returns c.
func (c Composition) Add(other Composition) Composition {
	for sym, count := range other {
		c[sym] += count
	}
	c.normalize()

	return c
}

// Sub removes other from c in place and returns c.
func (c Composition) Sub(other Composition) Composition {
	for sym, count := range other {
		c[sym] -= count
	}
	c.normalize()

	return c
}

// Equal reports whether c and other hold identical non-zero counts.
func (c Composition) Equal(other Composition) bool {
	for sym, count := range c {
		if other[sym] != count {
			return false
		}
	}
	for sym, count := range other {
		if c[sym] != count {
			return false
		}
	}

	return true
}

// IsEmpty reports whether every count is zero.
func (c Composition) IsEmpty() bool {
	for _, count := range c {
		if count != 0 {
			return false
		}
	}

	return true
}

// String renders the composition in Hill-like order (C, H, then
// alphabetical), omitting zero counts. Deterministic for hashing layers.
func (c Composition) String() string {
	symbols := make([]string, 0, len(c))
	for sym, count := range c {
		if count != 0 {
			symbols = append(symbols, sym)
		}
	}
	sort.Slice(symbols, func(i, j int) bool { return hillLess(symbols[i], symbols[j]) })

	var b strings.Builder
	for _, sym := range symbols {
		b.WriteString(sym)
		if count := c[sym]; count != 1 {
			b.WriteString(strconv.Itoa(count))
		}
	}

	return b.String()
}

// normalize drops zero entries so map equality and String stay canonical.
func (c Composition) normalize() {
	for sym, count := range c {
		if count == 0 {
			delete(c, sym)
		}
	}
}

func hillLess(a, b string) bool {
	rank := func(s string) int {
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		default:
			return 2
		}
	}
	if ra, rb := rank(a), rank(b); ra != rb {
		return ra < rb
	}

	return a < b
}
