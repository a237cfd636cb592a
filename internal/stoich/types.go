package stoich

// ParseRequest is the JSON body for POST /formula/parse.
type ParseRequest struct {
	Formula string `json:"formula"`
}

// ParseRow is one row of the parse-result table. AtomicWeight is null when
// the element has no known atomic weight.
type ParseRow struct {
	Element      string   `json:"element"`
	Coefficient  float64  `json:"coefficient"`
	AtomicWeight *float64 `json:"atomic_weight"`
}

// ParseResponse is the JSON response for POST /formula/parse. Rows appear
// in first-appearance order of the formula.
type ParseResponse struct {
	Formula string     `json:"formula"`
	Rows    []ParseRow `json:"rows"`
}

// MassRequest is the JSON body for POST /formula/mass.
type MassRequest struct {
	Formula          string  `json:"formula"`
	ReferenceElement string  `json:"reference_element"`
	ReferenceMassG   float64 `json:"reference_mass_g"`
}

// MassRow is one row of the calculation-result table. MassG is rounded to
// 5 decimal places for display and is null when the element's atomic
// weight is unavailable.
type MassRow struct {
	Element string   `json:"element"`
	MassG   *float64 `json:"mass_g"`
}

// MassResponse is the JSON response for POST /formula/mass.
type MassResponse struct {
	Formula          string    `json:"formula"`
	ReferenceElement string    `json:"reference_element"`
	ReferenceMassG   float64   `json:"reference_mass_g"`
	ScaleFactor      float64   `json:"scale_factor"`
	Rows             []MassRow `json:"rows"`
}

// ElementResponse is the JSON response for GET /elements/{symbol}.
type ElementResponse struct {
	Symbol       string  `json:"symbol"`
	AtomicWeight float64 `json:"atomic_weight"`
}
