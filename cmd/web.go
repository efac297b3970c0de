/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/renalscope/renalscope/classifier"
	"github.com/renalscope/renalscope/routes"
	"github.com/renalscope/renalscope/static"
	"github.com/renalscope/renalscope/templates"
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
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
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

// loadClassifier builds the process-wide classifier. A load failure here is
// fatal: the server must not serve any session without a working model.
func loadClassifier(cmd *cli.Command) (classifier.Classifier, error) {
	if url := cmd.String("model-url"); url != "" {
		modelLogger.Info("using remote inference service", "url", url)

		return classifier.NewRemote(url), nil
	}

	path := cmd.String("model")
	if path == "" {
		return nil, errModelPathRequired
	}

	modelLogger.Info("loading classifier artifact", "path", path)

	gbm, err := classifier.LoadGBM(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	return gbm, nil
}

func start(ctx context.Context, cmd *cli.Command) error {
	clf, err := loadClassifier(cmd)
	if err != nil {
		return err
	}

	f := flamego.Classic()

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer())
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))

	f.Use(routes.NoCacheHeaders())
	f.Use(routes.RequestLogger)
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())

	// The classifier is loaded once and read-only; sharing it across
	// sessions needs no locking.
	f.MapTo(clf, (*classifier.Classifier)(nil))

	f.Get("/", routes.Welcome)
	f.Post("/assessment/start", csrf.Validate, routes.StartAssessment)
	f.Post("/assessment/home", csrf.Validate, routes.ReturnHome)
	f.Get("/assessment/basic", routes.BasicMetricsForm)
	f.Post("/assessment/basic", csrf.Validate, routes.SubmitBasicMetrics)
	f.Get("/assessment/kidney", routes.KidneyMetricsForm)
	f.Post("/assessment/kidney", csrf.Validate, routes.SubmitKidneyMetrics)
	f.Get("/assessment/results", routes.Results)
	f.Get("/assessment/summary.png", routes.SummaryQR)

	port := cmd.String("port")

	webLogger.Info("starting web server", "port", port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return srv.ListenAndServe()
}
