/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Remote invokes an inference HTTP service instead of a local artifact. The
// service receives the named feature row and answers with the raw label.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a classifier that POSTs rows to baseURL's /predict
// endpoint.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type remoteRequest struct {
	Features     map[string]float64 `json:"features"`
	FeatureOrder []string           `json:"feature_order"`
}

type remoteResponse struct {
	Label string `json:"label"`
	Error string `json:"error,omitempty"`
}

// Predict sends the row to the inference service and returns its raw label.
func (r *Remote) Predict(ctx context.Context, row *Features) (string, error) {
	reqBody := remoteRequest{
		Features:     make(map[string]float64, row.Len()),
		FeatureOrder: row.Names(),
	}
	for _, name := range row.Names() {
		value, _ := row.Value(name)
		reqBody.Features[name] = value
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("inference service returned status %d: %s", resp.StatusCode, string(body))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}

	if out.Error != "" {
		return "", fmt.Errorf("inference service error: %s", out.Error)
	}

	return out.Label, nil
}
