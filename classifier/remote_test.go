// SPDX-FileCopyrightText: 2026 The Renalscope Authors
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renalscope/renalscope/assessment"
)

func TestRemotePredictSendsNamedRowAndReadsLabel(t *testing.T) {
	t.Parallel()

	var gotReq remoteRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("expected path /predict, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(remoteResponse{Label: "No_Disease"})
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL + "/")

	raw, err := remote.Predict(context.Background(), FeaturesFromRecord(assessment.NewRecord()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "No_Disease" {
		t.Fatalf("expected raw label %q, got %q", "No_Disease", raw)
	}

	if len(gotReq.Features) != 11 {
		t.Fatalf("expected 11 features, got %d", len(gotReq.Features))
	}
	if len(gotReq.FeatureOrder) != 11 {
		t.Fatalf("expected 11 ordered columns, got %d", len(gotReq.FeatureOrder))
	}
	if got := gotReq.Features["Age of the patient"]; got != 40 {
		t.Fatalf("expected default age 40, got %v", got)
	}
}

func TestRemotePredictSurfacesHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL)

	_, err := remote.Predict(context.Background(), FeaturesFromRecord(assessment.NewRecord()))
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "model backend down") {
		t.Fatalf("expected status and body in error, got %v", err)
	}
}

func TestRemotePredictSurfacesServiceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(remoteResponse{Error: "incompatible feature set"})
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL)

	_, err := remote.Predict(context.Background(), FeaturesFromRecord(assessment.NewRecord()))
	if err == nil {
		t.Fatal("expected error from service error field")
	}
	if !strings.Contains(err.Error(), "incompatible feature set") {
		t.Fatalf("expected service message in error, got %v", err)
	}
}

func TestRemotePredictRejectsMalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL)

	if _, err := remote.Predict(context.Background(), FeaturesFromRecord(assessment.NewRecord())); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}
