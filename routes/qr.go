/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/renalscope/renalscope/assessment"
	"github.com/renalscope/renalscope/classifier"
)

// summaryText is the plain-text assessment summary encoded into the QR code,
// meant to be scanned and taken to a clinician.
func summaryText(st *assessment.State) string {
	var sb strings.Builder

	sb.WriteString("Renalscope assessment ")
	sb.WriteString(st.ID)
	sb.WriteString("\n")

	if st.HasResult {
		switch st.ResultLabel {
		case classifier.LabelPositive.String():
			sb.WriteString("Result: kidney disease indicated\n")
		default:
			sb.WriteString("Result: no kidney disease indicated\n")
		}
	}

	for _, spec := range assessment.Specs() {
		sb.WriteString(spec.Label)
		sb.WriteString(": ")
		sb.WriteString(st.Record.Display(spec.Field))
		sb.WriteString("\n")
	}

	sb.WriteString("Results should be verified by a healthcare professional.")

	return sb.String()
}

// SummaryQR serves a PNG QR code of the current assessment summary. Only
// available on the results step.
func SummaryQR(c flamego.Context, s session.Session) {
	st := wizardState(s)
	if !requireStep(c, st, assessment.StepResults) {
		return
	}

	png, err := qrcode.Encode(summaryText(st), qrcode.Medium, 512)
	if err != nil {
		webLogger.Error("failed to encode summary QR", "err", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", "image/png")

	if _, err := c.ResponseWriter().Write(png); err != nil {
		webLogger.Error("failed to write summary QR", "err", err)
	}
}
