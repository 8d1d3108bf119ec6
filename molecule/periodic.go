package molecule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownElement indicates a symbol not present in the periodic table.
var ErrUnknownElement = errors.New("molecule: unknown element symbol")

// elementSymbols lists canonical element symbols indexed by atomic number.
// Index 0 is unused.
var elementSymbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er",
	"Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// symbolToZ maps normalized symbols to atomic numbers.
var symbolToZ = func() map[string]int {
	m := make(map[string]int, len(elementSymbols))
	for z := 1; z < len(elementSymbols); z++ {
		m[elementSymbols[z]] = z
	}
	return m
}()

// normalizeSymbol canonicalizes case: first rune upper, remainder lower
// ("zr" and "ZR" both resolve to "Zr").
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Z resolves an element symbol (case-insensitive) to its atomic number.
//
// Errors: ErrUnknownElement. Complexity: O(1).
func Z(symbol string) (int, error) {
	if z, ok := symbolToZ[normalizeSymbol(symbol)]; ok {
		return z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// Symbol returns the canonical symbol for atomic number z.
//
// Errors: ErrUnknownElement when z is outside [1, 118]. Complexity: O(1).
func Symbol(z int) (string, error) {
	if z < 1 || z >= len(elementSymbols) {
		return "", fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
	}
	return elementSymbols[z], nil
}
