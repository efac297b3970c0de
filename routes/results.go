/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/renalscope/renalscope/assessment"
	"github.com/renalscope/renalscope/classifier"
)

// measurementView is one collected value as the results table shows it.
type measurementView struct {
	Label string
	Value string
	Range string
}

func measurementViews(rec assessment.Record) []measurementView {
	views := make([]measurementView, 0, len(assessment.Specs()))
	for _, spec := range assessment.Specs() {
		views = append(views, measurementView{
			Label: spec.Label,
			Value: rec.Display(spec.Field),
			Range: formatBound(spec, spec.Min) + " - " + formatBound(spec, spec.Max),
		})
	}

	return views
}

// Results freezes the record, runs the prediction, and renders the outcome.
// A prediction failure is shown inline; the page still renders without a
// label and the session stays interactive.
func Results(c flamego.Context, s session.Session, t template.Template, data template.Data, clf classifier.Classifier) {
	st := wizardState(s)
	if !requireStep(c, st, assessment.StepResults) {
		return
	}

	data["IsResults"] = true

	// The record is read-only on this step.
	rec := st.Record.Clone()

	label, err := classifier.Predict(c.Request().Context(), clf, rec)
	if err != nil {
		webLogger.Error("prediction failed", "assessment_id", st.ID, "err", err)
		data["PredictionError"] = "Prediction error: " + err.Error()
		st.HasResult = false
		st.ResultLabel = ""
	} else {
		webLogger.Info("prediction complete", "assessment_id", st.ID, "label", label.String())
		data["HasResult"] = true
		data["Positive"] = label == classifier.LabelPositive
		st.HasResult = true
		st.ResultLabel = label.String()
	}

	saveWizardState(s, st)

	chart, err := measurementChart(rec)
	if err != nil {
		webLogger.Error("failed to render measurement chart", "err", err)
	} else {
		data["Chart"] = htmltemplate.HTML(chart)
	}

	data["AssessmentID"] = st.ID
	data["Measurements"] = measurementViews(rec)
	t.HTML(http.StatusOK, "results")
}
