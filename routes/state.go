/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/google/uuid"

	"github.com/renalscope/renalscope/assessment"
	"github.com/renalscope/renalscope/logging"
)

const stateSessionKey = "assessment_state"

var webLogger = logging.Logger(logging.SourceWeb)

func init() {
	// Register wizard state with gob for session serialization
	gob.Register(&assessment.State{})
	gob.Register(assessment.Record{})
}

// wizardState loads the session's wizard state, creating a fresh one at the
// Welcome step on first touch. The record and step belong to this session
// alone.
func wizardState(s session.Session) *assessment.State {
	if st, ok := s.Get(stateSessionKey).(*assessment.State); ok && st != nil {
		return st
	}

	st := assessment.NewState(uuid.NewString())
	s.Set(stateSessionKey, st)

	webLogger.Debug("created wizard state", "assessment_id", st.ID)

	return st
}

// saveWizardState writes the state back so encoded session stores pick up
// the mutation.
func saveWizardState(s session.Session, st *assessment.State) {
	s.Set(stateSessionKey, st)
}

// requireStep redirects to the session's current step when the requested
// page is not it, so every GET renders exactly the active step's view.
func requireStep(c flamego.Context, st *assessment.State, step assessment.Step) bool {
	if st.Step == step {
		return true
	}

	c.Redirect(st.Step.Path(), http.StatusSeeOther)

	return false
}
