/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package assessment holds the clinical measurement record collected by the
// wizard and the step state machine that drives it.
package assessment

import (
	"errors"
	"math"
	"strconv"
)

// Field identifies one of the eleven clinical measurements.
type Field string

const (
	FieldAge             Field = "age"
	FieldGlucose         Field = "glucose"
	FieldSerumCreatinine Field = "serum_creatinine"
	FieldPotassium       Field = "potassium"
	FieldWBC             Field = "wbc"
	FieldUrineOutput     Field = "urine_output"
	FieldBloodUrea       Field = "blood_urea"
	FieldUPCR            Field = "upcr"
	FieldEGFR            Field = "egfr"
	FieldPTH             Field = "pth"
	FieldIL6             Field = "il6"
)

var errEmptyControlValue = errors.New("empty control value")

// FieldSpec describes a single measurement control: its display label, valid
// range, step size and default. The wizard templates, the form parser and the
// clamping logic are all driven off this table.
type FieldSpec struct {
	Field   Field
	Label   string
	Help    string
	Min     float64
	Max     float64
	Step    float64
	Integer bool
	Default float64
	Slider  bool
}

// basicSpecs are the controls shown on the Basic Health Metrics step, in
// display order.
var basicSpecs = []FieldSpec{
	{
		Field: FieldAge, Label: "Age of the patient (years)",
		Help: "Patient's current age",
		Min:  5, Max: 100, Step: 1, Integer: true, Default: 40, Slider: true,
	},
	{
		Field: FieldGlucose, Label: "Random blood glucose level (mg/dl)",
		Help: "Random blood sugar level",
		Min:  50, Max: 600, Step: 5, Integer: true, Default: 100,
	},
	{
		Field: FieldSerumCreatinine, Label: "Serum creatinine (mg/dl)",
		Help: "Waste product in blood from muscle metabolism",
		Min:  0.50, Max: 20.00, Step: 0.1, Default: 1.00,
	},
	{
		Field: FieldPotassium, Label: "Potassium level (mEq/L)",
		Help: "Important electrolyte for nerve and muscle function",
		Min:  2.00, Max: 8.00, Step: 0.01, Default: 4.00,
	},
	{
		Field: FieldWBC, Label: "White blood cell count (cells/cumm)",
		Help: "Immune system cells count",
		Min:  1000, Max: 20000, Step: 50, Integer: true, Default: 7000,
	},
}

// kidneySpecs are the controls shown on the Kidney Function Metrics step, in
// display order.
var kidneySpecs = []FieldSpec{
	{
		Field: FieldUrineOutput, Label: "Urine output (ml/day)",
		Help: "Total urine volume in 24 hours",
		Min:  300, Max: 4000, Step: 1, Integer: true, Default: 1500, Slider: true,
	},
	{
		Field: FieldBloodUrea, Label: "Blood urea (mg/dl)",
		Help: "Waste product from protein breakdown",
		Min:  5.00, Max: 250.00, Step: 1.0, Default: 40.00,
	},
	{
		Field: FieldUPCR, Label: "Urine protein-to-creatinine ratio",
		Help: "Ratio of protein to creatinine in urine",
		Min:  0.01, Max: 10.00, Step: 0.1, Default: 0.50,
	},
	{
		Field: FieldEGFR, Label: "Estimated Glomerular Filtration Rate (eGFR)",
		Help: "Kidney filtration rate estimate",
		Min:  0.01, Max: 200.00, Step: 1.0, Default: 90.00,
	},
	{
		Field: FieldPTH, Label: "Parathyroid hormone (PTH) level",
		Help: "Hormone that regulates calcium levels",
		Min:  10.00, Max: 100.00, Step: 1.0, Default: 40.00,
	},
	{
		Field: FieldIL6, Label: "Interleukin-6 (IL-6) level (pg/ml)",
		Help: "Inflammation marker",
		Min:  0.01, Max: 20.00, Step: 0.05, Default: 5.00,
	},
}

// BasicSpecs returns the control specs for the Basic Health Metrics step.
func BasicSpecs() []FieldSpec {
	return basicSpecs
}

// KidneySpecs returns the control specs for the Kidney Function Metrics step.
func KidneySpecs() []FieldSpec {
	return kidneySpecs
}

// Specs returns all control specs in wizard display order.
func Specs() []FieldSpec {
	all := make([]FieldSpec, 0, len(basicSpecs)+len(kidneySpecs))
	all = append(all, basicSpecs...)
	all = append(all, kidneySpecs...)

	return all
}

// SpecOf returns the spec for a field.
func SpecOf(f Field) (FieldSpec, bool) {
	for _, spec := range Specs() {
		if spec.Field == f {
			return spec, true
		}
	}

	return FieldSpec{}, false
}

// Record maps each measurement field to its current value. Every field is
// always present and within its declared range.
type Record map[Field]float64

// NewRecord returns a record holding every field's default value.
func NewRecord() Record {
	r := make(Record, len(basicSpecs)+len(kidneySpecs))
	for _, spec := range Specs() {
		r[spec.Field] = spec.Default
	}

	return r
}

// Value returns the current value of a field.
func (r Record) Value(f Field) float64 {
	return r[f]
}

// Set stores a value for a field, clamped to the field's declared range.
func (r Record) Set(f Field, value float64) {
	spec, ok := SpecOf(f)
	if !ok {
		return
	}

	r[f] = Clamp(spec, value)
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for f, v := range r {
		out[f] = v
	}

	return out
}

// Display formats a field's current value the way its control shows it.
func (r Record) Display(f Field) string {
	spec, ok := SpecOf(f)
	if !ok {
		return ""
	}

	if spec.Integer {
		return strconv.Itoa(int(r[f]))
	}

	return strconv.FormatFloat(r[f], 'f', 2, 64)
}

// Clamp snaps a value into the spec's declared range. Integer fields are
// rounded to the nearest whole number before clamping.
func Clamp(spec FieldSpec, value float64) float64 {
	if spec.Integer {
		value = math.Round(value)
	}

	if value < spec.Min {
		return spec.Min
	}
	if value > spec.Max {
		return spec.Max
	}

	return value
}

// ParseControlValue parses the raw form value submitted by a control and
// clamps it to the field's range. Out-of-range entries snap to the nearest
// bound; malformed input returns an error so the caller keeps the previous
// value.
func ParseControlValue(spec FieldSpec, raw string) (float64, error) {
	if raw == "" {
		return 0, errEmptyControlValue
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}

	return Clamp(spec, value), nil
}
