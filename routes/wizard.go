/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/renalscope/renalscope/assessment"
)

// controlView is one input control as the step templates render it.
type controlView struct {
	Name   string
	Label  string
	Help   string
	Min    string
	Max    string
	Step   string
	Value  string
	Slider bool
}

func formatBound(spec assessment.FieldSpec, v float64) string {
	if spec.Integer {
		return strconv.Itoa(int(v))
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func controlViews(specs []assessment.FieldSpec, rec assessment.Record) []controlView {
	views := make([]controlView, 0, len(specs))
	for _, spec := range specs {
		views = append(views, controlView{
			Name:   string(spec.Field),
			Label:  spec.Label,
			Help:   spec.Help,
			Min:    formatBound(spec, spec.Min),
			Max:    formatBound(spec, spec.Max),
			Step:   formatBound(spec, spec.Step),
			Value:  rec.Display(spec.Field),
			Slider: spec.Slider,
		})
	}

	return views
}

// absorbControlValues stores each submitted control value into the record,
// clamped to the control's range. Malformed entries keep the previous value;
// the control itself clamps, the state machine never validates.
func absorbControlValues(c flamego.Context, specs []assessment.FieldSpec, rec assessment.Record) {
	form := c.Request().Form
	for _, spec := range specs {
		raw := form.Get(string(spec.Field))

		value, err := assessment.ParseControlValue(spec, raw)
		if err != nil {
			webLogger.Debug("keeping previous control value",
				"field", string(spec.Field), "raw", raw, "err", err)

			continue
		}

		rec[spec.Field] = value
	}
}

// Welcome renders the welcome page.
func Welcome(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	st := wizardState(s)
	if !requireStep(c, st, assessment.StepWelcome) {
		return
	}

	data["IsWelcome"] = true
	t.HTML(http.StatusOK, "welcome")
}

// StartAssessment begins the wizard from the welcome page.
func StartAssessment(c flamego.Context, s session.Session) {
	st := wizardState(s)
	st.Navigate(assessment.StepBasicMetrics)
	saveWizardState(s, st)

	c.Redirect(st.Step.Path(), http.StatusSeeOther)
}

// ReturnHome navigates back to the welcome page from any step. The record
// keeps its values.
func ReturnHome(c flamego.Context, s session.Session) {
	st := wizardState(s)
	st.Navigate(assessment.StepWelcome)
	saveWizardState(s, st)

	c.Redirect(st.Step.Path(), http.StatusSeeOther)
}

// BasicMetricsForm renders step 1 with the record's current values.
func BasicMetricsForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	st := wizardState(s)
	if !requireStep(c, st, assessment.StepBasicMetrics) {
		return
	}

	data["StepTitle"] = "Step 1: Basic Health Metrics"
	data["Controls"] = controlViews(assessment.BasicSpecs(), st.Record)
	t.HTML(http.StatusOK, "basic_metrics")
}

// SubmitBasicMetrics absorbs the step 1 control values and navigates per the
// pressed button.
func SubmitBasicMetrics(c flamego.Context, s session.Session) {
	st := wizardState(s)

	if err := c.Request().ParseForm(); err != nil {
		webLogger.Error("failed to parse form", "err", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(st.Step.Path(), http.StatusSeeOther)

		return
	}

	absorbControlValues(c, assessment.BasicSpecs(), st.Record)

	switch c.Request().Form.Get("action") {
	case "next":
		st.Navigate(assessment.StepKidneyMetrics)
	case "home":
		st.Navigate(assessment.StepWelcome)
	}

	saveWizardState(s, st)
	c.Redirect(st.Step.Path(), http.StatusSeeOther)
}

// KidneyMetricsForm renders step 2 with the record's current values.
func KidneyMetricsForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	st := wizardState(s)
	if !requireStep(c, st, assessment.StepKidneyMetrics) {
		return
	}

	data["StepTitle"] = "Step 2: Kidney Function Metrics"
	data["Controls"] = controlViews(assessment.KidneySpecs(), st.Record)
	t.HTML(http.StatusOK, "kidney_metrics")
}

// SubmitKidneyMetrics absorbs the step 2 control values and navigates per
// the pressed button.
func SubmitKidneyMetrics(c flamego.Context, s session.Session) {
	st := wizardState(s)

	if err := c.Request().ParseForm(); err != nil {
		webLogger.Error("failed to parse form", "err", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(st.Step.Path(), http.StatusSeeOther)

		return
	}

	absorbControlValues(c, assessment.KidneySpecs(), st.Record)

	switch c.Request().Form.Get("action") {
	case "analyze":
		st.Navigate(assessment.StepResults)
	case "previous":
		st.Navigate(assessment.StepBasicMetrics)
	case "home":
		st.Navigate(assessment.StepWelcome)
	}

	saveWizardState(s, st)
	c.Redirect(st.Step.Path(), http.StatusSeeOther)
}
