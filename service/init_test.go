// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"testing"

	utilLogger "github.com/omec-project/util/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetModuleLogLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  *utilLogger.LogSetting
		want zapcore.Level
	}{
		{"unset", nil, zap.InfoLevel},
		{"empty", &utilLogger.LogSetting{}, zap.InfoLevel},
		{"debug", &utilLogger.LogSetting{DebugLevel: "debug"}, zap.DebugLevel},
		{"warn", &utilLogger.LogSetting{DebugLevel: "warn"}, zap.WarnLevel},
		{"invalid", &utilLogger.LogSetting{DebugLevel: "verbose"}, zap.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got zapcore.Level
			setModuleLogLevel(tc.cfg, zap.NewNop().Sugar(), func(l zapcore.Level) { got = l }, "AMF")
			assert.Equal(t, tc.want, got)
		})
	}
}
