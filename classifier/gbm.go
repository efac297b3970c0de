/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitryikh/leaves"
)

var (
	errFeatureCountMismatch = errors.New("feature count does not match model")
	errColumnOrderMismatch  = errors.New("row columns do not match model feature order")
	errBadSidecarLabels     = errors.New("sidecar class_labels must list exactly two labels")
)

// gbmSidecar is the optional metadata file stored next to the model artifact
// (same path with a ".json" suffix). It carries what the LightGBM dump format
// does not: the trained feature order and the class label strings.
type gbmSidecar struct {
	FeatureNames []string `json:"feature_names,omitempty"`
	// ClassLabels is [negative, positive].
	ClassLabels []string `json:"class_labels,omitempty"`
	Threshold   *float64 `json:"threshold,omitempty"`
}

// GBM runs a gradient-boosting artifact loaded from disk. It is read-only
// after load and safe to share across sessions.
type GBM struct {
	ensemble  *leaves.Ensemble
	order     []string
	negative  string
	positive  string
	threshold float64
}

// LoadGBM loads a LightGBM-format model file and, if present, its JSON
// sidecar. A missing or corrupt artifact is a load error; callers treat it as
// fatal at startup.
func LoadGBM(path string) (*GBM, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}

	g := &GBM{
		ensemble:  ensemble,
		order:     TrainedColumnNames(),
		negative:  NoDiseaseOutput,
		positive:  DiseaseOutput,
		threshold: 0.5,
	}

	if err := g.applySidecar(path + ".json"); err != nil {
		return nil, err
	}

	if len(g.order) != ensemble.NFeatures() {
		return nil, fmt.Errorf("%w: model wants %d features, order lists %d",
			errFeatureCountMismatch, ensemble.NFeatures(), len(g.order))
	}

	return g, nil
}

func (g *GBM) applySidecar(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// No sidecar: the hard-coded trained order and labels apply.
		return nil
	}
	if err != nil {
		return fmt.Errorf("read model sidecar %s: %w", path, err)
	}

	var sc gbmSidecar
	if err := json.Unmarshal(raw, &sc); err != nil {
		return fmt.Errorf("parse model sidecar %s: %w", path, err)
	}

	if len(sc.FeatureNames) > 0 {
		g.order = sc.FeatureNames
	}
	if sc.ClassLabels != nil {
		if len(sc.ClassLabels) != 2 {
			return fmt.Errorf("%w: got %d", errBadSidecarLabels, len(sc.ClassLabels))
		}
		g.negative = sc.ClassLabels[0]
		g.positive = sc.ClassLabels[1]
	}
	if sc.Threshold != nil {
		g.threshold = *sc.Threshold
	}

	return nil
}

// FeatureNames returns the feature order the model expects.
func (g *GBM) FeatureNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Predict runs the single-row prediction and returns the class label string.
// The row must already match the model's feature order.
func (g *GBM) Predict(_ context.Context, row *Features) (string, error) {
	if row.Len() != len(g.order) {
		return "", fmt.Errorf("%w: model wants %d features, row has %d",
			errFeatureCountMismatch, len(g.order), row.Len())
	}

	names := row.Names()
	for i, name := range g.order {
		if names[i] != name {
			return "", fmt.Errorf("%w: position %d is %q, want %q",
				errColumnOrderMismatch, i, names[i], name)
		}
	}

	// Transformation was loaded with the model, so the single-row output
	// is already a positive-class probability.
	p := g.ensemble.PredictSingle(row.Values(), 0)
	if p >= g.threshold {
		return g.positive, nil
	}

	return g.negative, nil
}
