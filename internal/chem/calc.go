package chem

import "math"

// WeightSource resolves an element symbol to its atomic weight. A false
// second return means the weight is unknown. Implementations must be
// read-only; a source is shared across concurrent calculations.
type WeightSource interface {
	AtomicWeight(symbol string) (float64, bool)
}

// ElementMass is one row of a calculation result. Mass is full precision;
// apply RoundMass for display. Known is false when the element's atomic
// weight could not be resolved, in which case Mass is zero.
type ElementMass struct {
	Symbol string
	Mass   float64
	Known  bool
}

// CalculationResult holds the required mass of every element in a
// composition, in composition order. It is built fresh on every Calculate
// call and never mutated afterwards.
type CalculationResult struct {
	Reference     string
	ReferenceMass float64
	ScaleFactor   float64
	Masses        []ElementMass
}

// Calculate computes the mass of every element needed to realize the
// composition when refElement weighs refMass grams.
//
// The scale factor is refMass divided by the mass refElement would have at
// its parsed coefficient; every element's mass, the reference included, is
// then weight × coefficient × factor. A weight miss on a non-reference
// element degrades to a Known=false row rather than failing the whole
// calculation.
//
// Fails with *InvalidInputError when refElement is not in the composition
// or refMass is not strictly positive, and with *MissingWeightError when
// the reference element itself has no atomic weight.
func Calculate(comp *Composition, refElement string, refMass float64, weights WeightSource) (*CalculationResult, error) {
	refCoeff, ok := comp.Coefficient(refElement)
	if !ok {
		return nil, &InvalidInputError{Reason: ReasonUnknownReference, Element: refElement}
	}
	if !(refMass > 0) { // also rejects NaN
		return nil, &InvalidInputError{Reason: ReasonNonPositiveMass, Element: refElement, Mass: refMass}
	}

	baseWeight, ok := weights.AtomicWeight(refElement)
	if !ok {
		return nil, &MissingWeightError{Symbol: refElement}
	}

	factor := refMass / (baseWeight * refCoeff)

	result := &CalculationResult{
		Reference:     refElement,
		ReferenceMass: refMass,
		ScaleFactor:   factor,
		Masses:        make([]ElementMass, 0, comp.Len()),
	}

	for _, sym := range comp.Symbols() {
		coeff, _ := comp.Coefficient(sym)
		weight, ok := weights.AtomicWeight(sym)
		if !ok {
			result.Masses = append(result.Masses, ElementMass{Symbol: sym})
			continue
		}
		result.Masses = append(result.Masses, ElementMass{
			Symbol: sym,
			Mass:   weight * coeff * factor,
			Known:  true,
		})
	}

	return result, nil
}

// RoundMass rounds a mass to 5 decimal places for presentation. Stored
// results stay full precision; only the rendering surfaces round.
func RoundMass(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
