// SPDX-FileCopyrightText: 2026 The Renalscope Authors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/renalscope/renalscope/assessment"
	"github.com/renalscope/renalscope/classifier"
	"github.com/renalscope/renalscope/templates"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

// newWizardTestApp wires the wizard routes with a fake session and an
// optional classifier.
func newWizardTestApp(t *testing.T, s session.Session, clf classifier.Classifier) *flamego.Flame {
	t.Helper()

	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.MapTo(s, (*session.Session)(nil))
		c.Next()
	})

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))

	// The flame injector resolves handler arguments before requireStep can
	// redirect, so the results route always needs a classifier mapped.
	if clf == nil {
		clf = fixedClassifier{raw: classifier.NoDiseaseOutput}
	}
	f.MapTo(clf, (*classifier.Classifier)(nil))

	f.Get("/", Welcome)
	f.Post("/assessment/start", StartAssessment)
	f.Post("/assessment/home", ReturnHome)
	f.Get("/assessment/basic", BasicMetricsForm)
	f.Post("/assessment/basic", SubmitBasicMetrics)
	f.Get("/assessment/kidney", KidneyMetricsForm)
	f.Post("/assessment/kidney", SubmitKidneyMetrics)
	f.Get("/assessment/results", Results)
	f.Get("/assessment/summary.png", SummaryQR)

	return f
}

func performFormPOST(t *testing.T, f *flamego.Flame, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func performRawRequest(t *testing.T, f *flamego.Flame, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func performGET(t *testing.T, f *flamego.Flame, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != wantLocation {
		t.Fatalf("expected redirect %q, got %q", wantLocation, got)
	}
}

// sessionState reads the wizard state the handlers stored in the fake
// session.
func sessionState(t *testing.T, s *testSession) *assessment.State {
	t.Helper()

	st, ok := s.data[stateSessionKey].(*assessment.State)
	if !ok || st == nil {
		t.Fatal("expected wizard state in session")
	}

	return st
}

func sessionAtStep(t *testing.T, step assessment.Step) *testSession {
	t.Helper()

	s := newTestSession()
	st := assessment.NewState("test-assessment")
	st.Step = step
	s.Set(stateSessionKey, st)

	return s
}
