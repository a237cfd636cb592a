package chem

import "fmt"

// MalformedFormulaError reports a formula that could not be parsed. It keeps
// the offending formula so callers can echo it back verbatim.
type MalformedFormulaError struct {
	Formula string
	Reason  string
}

func (e *MalformedFormulaError) Error() string {
	return fmt.Sprintf("malformed formula %q: %s", e.Formula, e.Reason)
}

// InvalidInputReason distinguishes the two calculation precondition failures
// so user-facing messages can tell them apart.
type InvalidInputReason int

const (
	// ReasonUnknownReference means the reference element is not a key of
	// the composition.
	ReasonUnknownReference InvalidInputReason = iota
	// ReasonNonPositiveMass means the reference mass was zero or negative.
	ReasonNonPositiveMass
)

// InvalidInputError reports a violated calculation precondition.
type InvalidInputError struct {
	Reason  InvalidInputReason
	Element string
	Mass    float64
}

func (e *InvalidInputError) Error() string {
	switch e.Reason {
	case ReasonUnknownReference:
		return fmt.Sprintf("reference element %q does not appear in the composition", e.Element)
	case ReasonNonPositiveMass:
		return fmt.Sprintf("reference mass must be positive, got %g", e.Mass)
	}
	return "invalid calculation input"
}

// MissingWeightError reports that the reference element has no known atomic
// weight, so no scale factor can be established.
type MissingWeightError struct {
	Symbol string
}

func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("no atomic weight available for %s", e.Symbol)
}
