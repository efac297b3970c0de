/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/renalscope/renalscope/logging"

var appLogger = logging.Logger(logging.SourceApp)
var webLogger = logging.Logger(logging.SourceWeb)
var modelLogger = logging.Logger(logging.SourceModel)
