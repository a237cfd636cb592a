// Package chem implements the formula-parsing and mass-scaling core of the
// stoichiometry service: parsing a composition formula such as "Al2(SO4)3"
// into per-element coefficients, and scaling those coefficients into required
// masses anchored on a reference element of known weight.
package chem

import (
	"regexp"
	"strconv"
)

// tokenPattern matches one lexical unit of a formula: an element symbol
// (uppercase letter, optional lowercase letter), a decimal number, or a
// bracket. Characters outside these categories are dropped, not rejected;
// inputs like "Fe·2H2O" parse as if the stray characters were absent.
var tokenPattern = regexp.MustCompile(`[A-Z][a-z]?|\d*\.?\d+|\(|\)`)

// Composition maps element symbols to their total stoichiometric
// coefficients, in first-appearance order. It is immutable once returned by
// Parse and safe for concurrent reads.
type Composition struct {
	symbols []string
	coeffs  map[string]float64
}

// Len reports how many distinct elements the composition contains.
func (c *Composition) Len() int { return len(c.symbols) }

// Symbols returns the element symbols in first-appearance order. The slice
// is a copy; callers may modify it freely.
func (c *Composition) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Coefficient returns the total coefficient for symbol and whether the
// symbol appears in the composition at all.
func (c *Composition) Coefficient(symbol string) (float64, bool) {
	v, ok := c.coeffs[symbol]
	return v, ok
}

// group accumulates coefficients for one bracket-nesting level. Repeated
// symbols sum into the existing entry; order records first appearance.
type group struct {
	order  []string
	coeffs map[string]float64
}

func newGroup() *group {
	return &group{coeffs: make(map[string]float64)}
}

func (g *group) add(symbol string, coeff float64) {
	if _, seen := g.coeffs[symbol]; !seen {
		g.order = append(g.order, symbol)
	}
	g.coeffs[symbol] += coeff
}

// Parse parses a composition formula into a Composition.
//
//	Parse("H2O")        → {H: 2, O: 1}
//	Parse("Fe0.5O1.5")  → {Fe: 0.5, O: 1.5}
//	Parse("Al2(SO4)3")  → {Al: 2, S: 3, O: 12}
//
// Groups nest arbitrarily; a number after a close bracket multiplies every
// coefficient in the group. A symbol occurring more than once, at any
// nesting level, accumulates by summation. Parse fails with
// *MalformedFormulaError when the input contains no recognizable tokens or
// when brackets are unbalanced in either direction.
func Parse(formula string) (*Composition, error) {
	tokens := tokenPattern.FindAllString(formula, -1)
	if len(tokens) == 0 {
		return nil, &MalformedFormulaError{Formula: formula, Reason: "no recognizable tokens"}
	}

	stack := []*group{newGroup()}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == "(":
			stack = append(stack, newGroup())

		case tok == ")":
			if len(stack) == 1 {
				return nil, &MalformedFormulaError{Formula: formula, Reason: "close bracket without matching open bracket"}
			}

			multiplier := 1.0
			if i+1 < len(tokens) && isNumeric(tokens[i+1]) {
				i++
				multiplier = parseNumber(tokens[i])
			}

			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			for _, sym := range closed.order {
				parent.add(sym, closed.coeffs[sym]*multiplier)
			}

		case isNumeric(tok):
			// Bare numbers are only meaningful as look-ahead after a
			// symbol or close bracket; standalone they are skipped.

		default: // element symbol
			coeff := 1.0
			if i+1 < len(tokens) && isNumeric(tokens[i+1]) {
				i++
				coeff = parseNumber(tokens[i])
			}
			stack[len(stack)-1].add(tok, coeff)
		}
	}

	if len(stack) != 1 {
		return nil, &MalformedFormulaError{Formula: formula, Reason: "open bracket never closed"}
	}

	root := stack[0]
	return &Composition{symbols: root.order, coeffs: root.coeffs}, nil
}

func isNumeric(tok string) bool {
	return tok[0] == '.' || (tok[0] >= '0' && tok[0] <= '9')
}

// parseNumber converts a token that already matched the numeric pattern;
// the pattern guarantees ParseFloat cannot fail on it.
func parseNumber(tok string) float64 {
	v, _ := strconv.ParseFloat(tok, 64)
	return v
}
