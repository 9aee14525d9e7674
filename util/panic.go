// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoverWithLog recovers from panic and logs the error and stack trace using the provided logger
func RecoverWithLog(logger *zap.SugaredLogger) {
	if p := recover(); p != nil {
		logger.Errorw("panic recovered", "error", p, "stack", string(debug.Stack()))
	}
}

// RecoverToError recovers from panic and stores it in *err, so callers of
// code that may panic on malformed input get an ordinary error instead.
func RecoverToError(logger *zap.SugaredLogger, err *error) {
	if p := recover(); p != nil {
		logger.Errorw("panic recovered", "error", p, "stack", string(debug.Stack()))
		*err = fmt.Errorf("recovered from panic: %v", p)
	}
}
