// SPDX-FileCopyrightText: 2026 The Renalscope Authors
// SPDX-License-Identifier: Apache-2.0

package assessment

import "testing"

func TestCanNavigate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from Step
		to   Step
		want bool
	}{
		{name: "welcome to basic", from: StepWelcome, to: StepBasicMetrics, want: true},
		{name: "basic to kidney", from: StepBasicMetrics, to: StepKidneyMetrics, want: true},
		{name: "kidney to results", from: StepKidneyMetrics, to: StepResults, want: true},
		{name: "kidney back to basic", from: StepKidneyMetrics, to: StepBasicMetrics, want: true},
		{name: "basic home", from: StepBasicMetrics, to: StepWelcome, want: true},
		{name: "kidney home", from: StepKidneyMetrics, to: StepWelcome, want: true},
		{name: "results home", from: StepResults, to: StepWelcome, want: true},
		{name: "no skipping to results", from: StepWelcome, to: StepResults, want: false},
		{name: "no skipping to kidney", from: StepWelcome, to: StepKidneyMetrics, want: false},
		{name: "no jumping back to results", from: StepResults, to: StepKidneyMetrics, want: false},
		{name: "basic cannot reach results", from: StepBasicMetrics, to: StepResults, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := CanNavigate(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanNavigate(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestNavigateTakesDeclaredTransitions(t *testing.T) {
	t.Parallel()

	st := NewState("test")

	if st.Step != StepWelcome {
		t.Fatalf("expected fresh state at Welcome, got %v", st.Step)
	}

	for _, step := range []Step{StepBasicMetrics, StepKidneyMetrics, StepResults} {
		if !st.Navigate(step) {
			t.Fatalf("expected transition to %v to be accepted", step)
		}
		if st.Step != step {
			t.Fatalf("expected step %v, got %v", step, st.Step)
		}
	}
}

func TestNavigateRejectsUndeclaredTransitions(t *testing.T) {
	t.Parallel()

	st := NewState("test")

	if st.Navigate(StepResults) {
		t.Fatal("expected Welcome -> Results to be rejected")
	}
	if st.Step != StepWelcome {
		t.Fatalf("expected step unchanged at Welcome, got %v", st.Step)
	}
}

func TestNavigationNeverAltersRecord(t *testing.T) {
	t.Parallel()

	st := NewState("test")
	st.Record.Set(FieldAge, 63)
	st.Record.Set(FieldEGFR, 35.0)

	path := []Step{
		StepBasicMetrics, StepKidneyMetrics, StepBasicMetrics,
		StepKidneyMetrics, StepResults, StepWelcome,
	}
	for _, step := range path {
		if !st.Navigate(step) {
			t.Fatalf("expected transition to %v to be accepted", step)
		}
	}

	if got := st.Record.Value(FieldAge); got != 63 {
		t.Fatalf("expected age to survive navigation, got %v", got)
	}
	if got := st.Record.Value(FieldEGFR); got != 35.0 {
		t.Fatalf("expected eGFR to survive navigation, got %v", got)
	}
}

func TestStepStringAndPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		step     Step
		wantName string
		wantPath string
	}{
		{step: StepWelcome, wantName: "Welcome", wantPath: "/"},
		{step: StepBasicMetrics, wantName: "Basic Health Metrics", wantPath: "/assessment/basic"},
		{step: StepKidneyMetrics, wantName: "Kidney Function Metrics", wantPath: "/assessment/kidney"},
		{step: StepResults, wantName: "Results", wantPath: "/assessment/results"},
		{step: Step(42), wantName: "Unknown", wantPath: "/"},
	}

	for _, tc := range cases {
		if got := tc.step.String(); got != tc.wantName {
			t.Fatalf("expected name %q, got %q", tc.wantName, got)
		}
		if got := tc.step.Path(); got != tc.wantPath {
			t.Fatalf("expected path %q, got %q", tc.wantPath, got)
		}
	}
}
