/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package assessment

// Step is the current position in the linear data-collection flow.
type Step int

const (
	StepWelcome Step = iota
	StepBasicMetrics
	StepKidneyMetrics
	StepResults
)

// String returns the human-readable step name.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "Welcome"
	case StepBasicMetrics:
		return "Basic Health Metrics"
	case StepKidneyMetrics:
		return "Kidney Function Metrics"
	case StepResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Path returns the URL path that renders the step.
func (s Step) Path() string {
	switch s {
	case StepBasicMetrics:
		return "/assessment/basic"
	case StepKidneyMetrics:
		return "/assessment/kidney"
	case StepResults:
		return "/assessment/results"
	default:
		return "/"
	}
}

// transitions declares the allowed navigation edges: a strictly linear
// forward path, back from kidney metrics, and home from anywhere.
var transitions = map[Step][]Step{
	StepWelcome:       {StepBasicMetrics, StepWelcome},
	StepBasicMetrics:  {StepKidneyMetrics, StepWelcome},
	StepKidneyMetrics: {StepResults, StepBasicMetrics, StepWelcome},
	StepResults:       {StepWelcome},
}

// CanNavigate reports whether the edge from one step to another is declared.
func CanNavigate(from, to Step) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// State is one session's wizard position and accumulated record. It is owned
// exclusively by that session; the only process-wide object is the classifier.
type State struct {
	ID     string
	Step   Step
	Record Record

	// Outcome of the last prediction, kept so the summary QR can be
	// produced after the Results page rendered.
	ResultLabel string
	HasResult   bool
}

// NewState returns a fresh session state positioned at Welcome with a
// default-valued record.
func NewState(id string) *State {
	return &State{
		ID:     id,
		Step:   StepWelcome,
		Record: NewRecord(),
	}
}

// Navigate sets the current step if the transition is declared and reports
// whether it was taken. Declared transitions are unconditionally accepted;
// there are no error conditions. The record is never touched: returning home
// keeps the values the user already entered.
func (st *State) Navigate(to Step) bool {
	if !CanNavigate(st.Step, to) {
		return false
	}

	st.Step = to

	return true
}
