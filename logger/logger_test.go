// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceCore(t *testing.T) {
	original := GetLogger()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := ReplaceCore(core)

	NgapLog.Infof("NG Setup from gNB[%s]", "Nervion")
	NasLog.Debugln("plain message")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "NG Setup from gNB[Nervion]", entry.Message)
	assert.Equal(t, map[string]interface{}{"component": "AMF", "category": "NGAP"}, entry.ContextMap())
	assert.Equal(t, "NAS", logs.All()[1].ContextMap()["category"])

	restore()
	assert.Same(t, original, GetLogger())
	NgapLog.Infoln("not observed")
	assert.Equal(t, 2, logs.Len())
}
