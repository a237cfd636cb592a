package stoich

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chem-stoich/internal/chem"
	"chem-stoich/internal/observability"
	"chem-stoich/internal/ptable"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// fakeWeights lets tests control exactly which elements are known.
type fakeWeights map[string]float64

func (f fakeWeights) AtomicWeight(symbol string) (float64, bool) {
	w, ok := f[symbol]
	return w, ok
}

func newTestRouter(t *testing.T, weights chem.WeightSource) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing stoich metrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandlers(weights))
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestParseFormulaEndpoint(t *testing.T) {
	router := newTestRouter(t, ptable.Standard())

	w := postJSON(t, router, "/formula/parse", ParseRequest{Formula: "Fe(OH)2"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	wantOrder := []string{"Fe", "O", "H"}
	wantCoeff := map[string]float64{"Fe": 1, "O": 2, "H": 2}

	if len(resp.Rows) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(resp.Rows))
	}
	for i, row := range resp.Rows {
		if row.Element != wantOrder[i] {
			t.Fatalf("row %d: expected element %s, got %s", i, wantOrder[i], row.Element)
		}
		if row.Coefficient != wantCoeff[row.Element] {
			t.Fatalf("element %s: expected coefficient %g, got %g", row.Element, wantCoeff[row.Element], row.Coefficient)
		}
		if row.AtomicWeight == nil {
			t.Fatalf("element %s: expected known atomic weight", row.Element)
		}
	}
}

func TestParseFormulaMalformed(t *testing.T) {
	router := newTestRouter(t, ptable.Standard())

	w := postJSON(t, router, "/formula/parse", ParseRequest{Formula: "Fe)O2"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}
}

func TestParseFormulaInvalidBody(t *testing.T) {
	router := newTestRouter(t, ptable.Standard())

	req := httptest.NewRequest(http.MethodPost, "/formula/parse", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCalculateMassEndpoint(t *testing.T) {
	router := newTestRouter(t, fakeWeights{"H": 1, "O": 16})

	w := postJSON(t, router, "/formula/mass", MassRequest{
		Formula:          "H2O",
		ReferenceElement: "H",
		ReferenceMassG:   2,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp MassResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ScaleFactor != 1 {
		t.Fatalf("expected scale factor 1, got %g", resp.ScaleFactor)
	}

	want := map[string]float64{"H": 2, "O": 16}
	for _, row := range resp.Rows {
		if row.MassG == nil {
			t.Fatalf("element %s: expected a mass", row.Element)
		}
		if *row.MassG != want[row.Element] {
			t.Fatalf("element %s: expected mass %g, got %g", row.Element, want[row.Element], *row.MassG)
		}
	}
}

func TestCalculateMassErrors(t *testing.T) {
	tests := []struct {
		name       string
		req        MassRequest
		wantStatus int
	}{
		{
			name:       "malformed formula",
			req:        MassRequest{Formula: "Fe)O2", ReferenceElement: "Fe", ReferenceMassG: 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown reference element",
			req:        MassRequest{Formula: "H2O", ReferenceElement: "Fe", ReferenceMassG: 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero reference mass",
			req:        MassRequest{Formula: "H2O", ReferenceElement: "H", ReferenceMassG: 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative reference mass",
			req:        MassRequest{Formula: "H2O", ReferenceElement: "H", ReferenceMassG: -3},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "reference without atomic weight",
			req:        MassRequest{Formula: "ZzO2", ReferenceElement: "Zz", ReferenceMassG: 1},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, fakeWeights{"H": 1, "O": 16, "Fe": 55.845})

			w := postJSON(t, router, "/formula/mass", tc.req)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCalculateMassPartialResult(t *testing.T) {
	// Zz has no weight entry; its row degrades to null while the other
	// rows stay numeric.
	router := newTestRouter(t, fakeWeights{"H": 1, "O": 16})

	w := postJSON(t, router, "/formula/mass", MassRequest{
		Formula:          "ZzH2O",
		ReferenceElement: "O",
		ReferenceMassG:   16,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp MassResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	for _, row := range resp.Rows {
		switch row.Element {
		case "Zz":
			if row.MassG != nil {
				t.Fatalf("expected Zz mass to be unavailable, got %g", *row.MassG)
			}
		default:
			if row.MassG == nil {
				t.Fatalf("element %s: expected a mass", row.Element)
			}
		}
	}
}

func TestElementWeightEndpoint(t *testing.T) {
	router := newTestRouter(t, ptable.Standard())

	req := httptest.NewRequest(http.MethodGet, "/elements/Fe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp ElementResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Symbol != "Fe" || resp.AtomicWeight != 55.845 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestElementWeightUnknownSymbol(t *testing.T) {
	router := newTestRouter(t, ptable.Standard())

	req := httptest.NewRequest(http.MethodGet, "/elements/Xx", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
