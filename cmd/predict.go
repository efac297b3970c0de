/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/renalscope/renalscope/assessment"
	"github.com/renalscope/renalscope/classifier"
)

var CmdPredict = &cli.Command{
	Name:   "predict",
	Usage:  "Run a one-shot prediction without the web server",
	Flags:  predictFlags(),
	Action: predict,
}

// predictFlags exposes one flag per measurement field on top of the model
// flags. Unset fields keep their documented defaults.
func predictFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "model",
			Value:   "model/kidney_gb.txt",
			Sources: cli.EnvVars("RENALSCOPE_MODEL"),
			Usage:   "path to the trained classifier artifact",
		},
		&cli.StringFlag{
			Name:    "model-url",
			Sources: cli.EnvVars("RENALSCOPE_MODEL_URL"),
			Usage:   "base URL of a remote inference service (overrides --model)",
		},
	}

	for _, spec := range assessment.Specs() {
		flags = append(flags, &cli.FloatFlag{
			Name:  string(spec.Field),
			Value: spec.Default,
			Usage: spec.Label,
		})
	}

	return flags
}

func predict(ctx context.Context, cmd *cli.Command) error {
	clf, err := loadClassifier(cmd)
	if err != nil {
		return err
	}

	rec := assessment.NewRecord()
	for _, spec := range assessment.Specs() {
		name := string(spec.Field)
		if !cmd.IsSet(name) {
			continue
		}

		// Record.Set clamps exactly like the form controls do.
		rec.Set(spec.Field, cmd.Float(name))
	}

	label, err := classifier.Predict(ctx, clf, rec)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	appLogger.Info("prediction complete", "label", label.String())

	switch label {
	case classifier.LabelNegative:
		fmt.Println("No kidney disease indicated")
	case classifier.LabelPositive:
		fmt.Println("Kidney disease indicated")
	}

	return nil
}
