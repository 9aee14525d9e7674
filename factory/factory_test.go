// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omec-project/corekube/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreConfig(t *testing.T) {
	prev := AmfConfig
	t.Cleanup(func() { AmfConfig = prev })
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Equal(t, "CoreKubeRS_5G_Worker", cfg.AmfName)
	assert.Equal(t, context.PlmnId{Mcc: 208, Mnc: 93}, cfg.Guami.PlmnId)
	assert.Equal(t, uint8(2), cfg.Guami.RegionId)
	assert.Equal(t, uint16(1), cfg.Guami.SetId)
	assert.Equal(t, uint8(0), cfg.Guami.Pointer)
	assert.Equal(t, uint8(255), cfg.RelativeAMFCapacity)
	assert.Equal(t, []uint8{1}, cfg.SstList)
	assert.Equal(t, context.BindAddress{Addr: "0.0.0.0", Port: 9977}, cfg.BindAddress)
	assert.True(t, cfg.Multithreaded)
}

func TestInitConfigFactoryKeepsDefaults(t *testing.T) {
	restoreConfig(t)

	require.NoError(t, InitConfigFactory("testdata/amfcfg.yaml"))
	require.NoError(t, CheckConfigVersion())

	cfg := AmfConfig.Configuration
	assert.Equal(t, "amf-partial", cfg.AmfName)
	assert.Equal(t, context.PlmnId{Mcc: 1, Mnc: 1}, cfg.Guami.PlmnId)
	assert.Equal(t, uint16(3), cfg.Guami.SetId)
	assert.Equal(t, uint8(2), cfg.Guami.RegionId)
	assert.Equal(t, []uint8{1, 2}, cfg.SstList)
	assert.Equal(t, context.BindAddress{Addr: "127.0.0.1", Port: 9977}, cfg.BindAddress)
	assert.Equal(t, uint8(255), cfg.RelativeAMFCapacity)
	assert.True(t, cfg.Multithreaded)

	require.NotNil(t, AmfConfig.Logger)
	require.NotNil(t, AmfConfig.Logger.AMF)
	assert.Equal(t, "debug", AmfConfig.Logger.AMF.DebugLevel)
}

func TestCheckConfigVersionMismatch(t *testing.T) {
	restoreConfig(t)

	path := filepath.Join(t.TempDir(), "amfcfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("info:\n  version: 0.9.0\n"), 0o600))

	require.NoError(t, InitConfigFactory(path))
	require.Error(t, CheckConfigVersion())
	assert.Equal(t, DefaultConfiguration(), AmfConfig.Configuration)
}

func TestInitConfigFactoryErrors(t *testing.T) {
	restoreConfig(t)

	require.Error(t, InitConfigFactory(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("configuration: [unterminated"), 0o600))
	require.Error(t, InitConfigFactory(path))
}
