// Package stoich exposes the formula parser and mass calculator over HTTP:
// parsing a composition formula into per-element coefficient rows, and
// computing the per-element masses needed to match a reference element's
// observed mass.
package stoich

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"chem-stoich/internal/chem"
	"chem-stoich/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the stoichiometry domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("stoich")

// Handlers serves the formula endpoints. Weights is the atomic-weight
// source shared by every request; it must be read-only.
type Handlers struct {
	Weights chem.WeightSource
}

func NewHandlers(weights chem.WeightSource) *Handlers {
	return &Handlers{Weights: weights}
}

// statusFor maps a domain error to its HTTP status. Malformed formulas and
// precondition violations are the caller's fault; a reference element
// without an atomic weight is a well-formed request we cannot serve.
func statusFor(err error) int {
	var malformed *chem.MalformedFormulaError
	var invalid *chem.InvalidInputError
	var missing *chem.MissingWeightError

	switch {
	case errors.As(err, &malformed), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ParseFormula handles POST /formula/parse.
func (h *Handlers) ParseFormula(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "stoich.parse",
		trace.WithAttributes(
			attribute.String("stoich.operation", "parse"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "parse", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("stoich.formula", req.Formula))

	start := time.Now()
	comp, err := chem.Parse(req.Formula)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "parse", err.Error(), err, statusFor(err), w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "parse"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("parse.complete", trace.WithAttributes(
		attribute.Int("stoich.elements", comp.Len()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("formula parsed",
		zap.String("formula", req.Formula),
		zap.Int("elements", comp.Len()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := ParseResponse{
		Formula: req.Formula,
		Rows:    h.parseRows(comp),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// parseRows renders a composition as ordered table rows, annotating each
// element with its atomic weight where known.
func (h *Handlers) parseRows(comp *chem.Composition) []ParseRow {
	rows := make([]ParseRow, 0, comp.Len())
	for _, sym := range comp.Symbols() {
		coeff, _ := comp.Coefficient(sym)
		row := ParseRow{Element: sym, Coefficient: coeff}
		if weight, ok := h.Weights.AtomicWeight(sym); ok {
			row.AtomicWeight = &weight
		}
		rows = append(rows, row)
	}
	return rows
}

// CalculateMass handles POST /formula/mass. Parsing and calculation run
// under their own child spans so the two phases show up separately in a
// trace.
func (h *Handlers) CalculateMass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "stoich.mass",
		trace.WithAttributes(
			attribute.String("stoich.operation", "mass"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req MassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "mass", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if math.IsNaN(req.ReferenceMassG) || math.IsInf(req.ReferenceMassG, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, "mass", "invalid numeric input", errors.New("reference mass is not a finite number"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("stoich.formula", req.Formula),
		attribute.String("stoich.reference", req.ReferenceElement),
		attribute.Float64("stoich.reference_mass_g", req.ReferenceMassG),
	)

	start := time.Now()

	_, parseSpan := tracer.Start(ctx, "stoich.mass.parse")
	comp, err := chem.Parse(req.Formula)
	if err != nil {
		parseSpan.RecordError(err)
		parseSpan.SetStatus(codes.Error, err.Error())
		parseSpan.End()
		observability.RecordError(ctx, span, logger, errorCounter, "mass", err.Error(), err, statusFor(err), w)
		return
	}
	parseSpan.SetStatus(codes.Ok, "")
	parseSpan.End()

	_, calcSpan := tracer.Start(ctx, "stoich.mass.calculate")
	result, err := chem.Calculate(comp, req.ReferenceElement, req.ReferenceMassG, h.Weights)
	if err != nil {
		calcSpan.RecordError(err)
		calcSpan.SetStatus(codes.Error, err.Error())
		calcSpan.End()
		observability.RecordError(ctx, span, logger, errorCounter, "mass", err.Error(), err, statusFor(err), w)
		return
	}
	calcSpan.SetStatus(codes.Ok, "")
	calcSpan.End()

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", "mass"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	scaleGauge.Record(ctx, result.ScaleFactor, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("stoich.scale_factor", result.ScaleFactor),
		attribute.Int("stoich.elements", len(result.Masses)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("stoich.scale_factor", result.ScaleFactor))
	span.SetStatus(codes.Ok, "")

	logger.Info("mass calculation completed",
		zap.String("formula", req.Formula),
		zap.String("reference", req.ReferenceElement),
		zap.Float64("reference_mass_g", req.ReferenceMassG),
		zap.Float64("scale_factor", result.ScaleFactor),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	rows := make([]MassRow, 0, len(result.Masses))
	for _, m := range result.Masses {
		row := MassRow{Element: m.Symbol}
		if m.Known {
			rounded := chem.RoundMass(m.Mass)
			row.MassG = &rounded
		}
		rows = append(rows, row)
	}

	resp := MassResponse{
		Formula:          req.Formula,
		ReferenceElement: req.ReferenceElement,
		ReferenceMassG:   req.ReferenceMassG,
		ScaleFactor:      result.ScaleFactor,
		Rows:             rows,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ElementWeight handles GET /elements/{symbol}.
func (h *Handlers) ElementWeight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "stoich.element",
		trace.WithAttributes(attribute.String("stoich.operation", "element")),
	)
	defer span.End()

	symbol := chi.URLParam(r, "symbol")
	span.SetAttributes(attribute.String("stoich.element.symbol", symbol))

	weight, ok := h.Weights.AtomicWeight(symbol)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "element", "unknown element "+symbol, errors.New("no atomic weight entry"), http.StatusNotFound, w)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "element")))
	span.SetStatus(codes.Ok, "")

	resp := ElementResponse{Symbol: symbol, AtomicWeight: weight}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
