/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package classifier is the inference boundary: it shapes a measurement
// record into the single-row table the trained model expects, invokes the
// model, and maps its raw output to a risk label. The trained artifact itself
// stays behind the narrow Classifier interface; adapters absorb all
// format-specific concerns.
package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/renalscope/renalscope/assessment"
)

// NoDiseaseOutput is the raw model output that indicates a negative result.
// Any other output value is treated as positive.
const NoDiseaseOutput = "No_Disease"

// DiseaseOutput is the raw output the bundled adapter emits for the positive
// class when no sidecar overrides the class labels.
const DiseaseOutput = "Disease"

var (
	errUnknownColumn  = errors.New("unknown feature column")
	errMissingColumn  = errors.New("feature column missing from row")
	errDuplicateOrder = errors.New("duplicate column in feature order")
)

// Label is the binary outcome of inference.
type Label int

const (
	// LabelNegative means no disease indicated.
	LabelNegative Label = iota
	// LabelPositive means disease indicated.
	LabelPositive
)

func (l Label) String() string {
	if l == LabelNegative {
		return "Negative"
	}

	return "Positive"
}

// trainedColumn maps a record field to the exact column name the model was
// trained on. The order of this table is the trained column order; both the
// names and the order are a contract with the artifact and must not change.
type trainedColumn struct {
	Field  assessment.Field
	Column string
}

var trainedColumns = []trainedColumn{
	{assessment.FieldAge, "Age of the patient"},
	{assessment.FieldGlucose, "Random blood glucose level (mg/dl)"},
	{assessment.FieldBloodUrea, "Blood urea (mg/dl)"},
	{assessment.FieldSerumCreatinine, "Serum creatinine (mg/dl)"},
	{assessment.FieldPotassium, "Potassium level (mEq/L)"},
	{assessment.FieldWBC, "White blood cell count (cells/cumm)"},
	{assessment.FieldEGFR, "Estimated Glomerular Filtration Rate (eGFR)"},
	{assessment.FieldUPCR, "Urine protein-to-creatinine ratio"},
	{assessment.FieldUrineOutput, "Urine output (ml/day)"},
	{assessment.FieldPTH, "Parathyroid hormone (PTH) level"},
	{assessment.FieldIL6, "Interleukin-6 (IL-6) level"},
}

// TrainedColumnNames returns the trained column names in training order.
func TrainedColumnNames() []string {
	names := make([]string, len(trainedColumns))
	for i, tc := range trainedColumns {
		names[i] = tc.Column
	}

	return names
}

// Features is a single-row table of named measurement columns with a defined
// column order.
type Features struct {
	names  []string
	values map[string]float64
}

// NewFeatures returns an empty single-row table.
func NewFeatures() *Features {
	return &Features{values: make(map[string]float64)}
}

// Set appends a column (or overwrites an existing one in place).
func (f *Features) Set(name string, value float64) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

// Names returns the column names in order.
func (f *Features) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)

	return out
}

// Value returns the value of a named column.
func (f *Features) Value(name string) (float64, bool) {
	v, ok := f.values[name]

	return v, ok
}

// Len returns the number of columns.
func (f *Features) Len() int {
	return len(f.names)
}

// Values returns the row values in column order.
func (f *Features) Values() []float64 {
	out := make([]float64, len(f.names))
	for i, name := range f.names {
		out[i] = f.values[name]
	}

	return out
}

// Reorder rearranges the columns to match the given order. Every name in the
// order must already be a column, and the order must cover the whole row.
func (f *Features) Reorder(order []string) error {
	if len(order) != len(f.names) {
		return fmt.Errorf("%w: expected %d columns, got %d", errMissingColumn, len(f.names), len(order))
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if seen[name] {
			return fmt.Errorf("%w: %q", errDuplicateOrder, name)
		}
		seen[name] = true

		if _, ok := f.values[name]; !ok {
			return fmt.Errorf("%w: %q", errUnknownColumn, name)
		}
	}

	names := make([]string, len(order))
	copy(names, order)
	f.names = names

	return nil
}

// FeaturesFromRecord builds the single-row table for a record using the
// trained column names, in training order.
func FeaturesFromRecord(rec assessment.Record) *Features {
	row := NewFeatures()
	for _, tc := range trainedColumns {
		row.Set(tc.Column, rec.Value(tc.Field))
	}

	return row
}

// Classifier is the narrow interface over the trained artifact: one row in,
// one raw label out.
type Classifier interface {
	Predict(ctx context.Context, row *Features) (string, error)
}

// FeatureOrderer is implemented by classifiers that expose the feature order
// they were trained with. When available, rows are reordered to match before
// invocation.
type FeatureOrderer interface {
	FeatureNames() []string
}

// MapOutput maps a raw model output value to a Label. The literal
// "No_Disease" is negative; any other value is positive.
func MapOutput(raw string) Label {
	if raw == NoDiseaseOutput {
		return LabelNegative
	}

	return LabelPositive
}

// Predict runs the full inference boundary for a record: build the
// column-mapped row, reorder it if the classifier exposes an expected order,
// invoke the single-row prediction, and map the output.
func Predict(ctx context.Context, c Classifier, rec assessment.Record) (Label, error) {
	row := FeaturesFromRecord(rec)

	if orderer, ok := c.(FeatureOrderer); ok {
		if order := orderer.FeatureNames(); len(order) > 0 {
			if err := row.Reorder(order); err != nil {
				return LabelNegative, fmt.Errorf("reorder features: %w", err)
			}
		}
	}

	raw, err := c.Predict(ctx, row)
	if err != nil {
		return LabelNegative, err
	}

	return MapOutput(raw), nil
}
