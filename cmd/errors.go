/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var errModelPathRequired = errors.New("model is required (set via --model or RENALSCOPE_MODEL env var)")
