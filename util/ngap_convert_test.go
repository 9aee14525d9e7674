// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"testing"

	"github.com/omec-project/aper"
	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePLMN(t *testing.T) {
	tests := []struct {
		name     string
		mcc, mnc uint16
		want     [3]byte
	}{
		{"two digit MNC", 208, 93, [3]byte{0x02, 0xf8, 0x39}},
		{"three digit MNC", 310, 410, [3]byte{0x13, 0x40, 0x01}},
		{"test network", 1, 1, [3]byte{0x00, 0xf1, 0x10}},
		{"max values", 999, 999, [3]byte{0x99, 0x99, 0x99}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodePLMN(tc.mcc, tc.mnc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodePLMNAlwaysThreeOctets(t *testing.T) {
	for mcc := uint16(0); mcc <= 999; mcc += 37 {
		for mnc := uint16(0); mnc <= 999; mnc++ {
			plmn, err := PlmnIdToNgap(context.PlmnId{Mcc: mcc, Mnc: mnc})
			if err != nil {
				t.Fatalf("PlmnIdToNgap(%d, %d): %v", mcc, mnc, err)
			}
			if len(plmn.Value) != 3 {
				t.Fatalf("PlmnIdToNgap(%d, %d) returned %d octets", mcc, mnc, len(plmn.Value))
			}
			if mnc < 100 && plmn.Value[1]>>4 != mncFiller {
				t.Fatalf("PlmnIdToNgap(%d, %d) missing filler: % x", mcc, mnc, plmn.Value)
			}
		}
	}
}

func TestEncodePLMNOutOfRange(t *testing.T) {
	_, err := EncodePLMN(1000, 1)
	require.Error(t, err)
	_, err = EncodePLMN(1, 1000)
	require.Error(t, err)
}

func TestGuamiToNgap(t *testing.T) {
	guami, err := GuamiToNgap(context.Guami{
		PlmnId:   context.PlmnId{Mcc: 208, Mnc: 93},
		RegionId: 2,
		SetId:    1,
		Pointer:  0,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte{0x02, 0xf8, 0x39}, []byte(guami.PLMNIdentity.Value))
	assert.Equal(t, aper.BitString{Bytes: []byte{0x02}, BitLength: 8}, guami.AMFRegionID.Value)
	assert.Equal(t, aper.BitString{Bytes: []byte{0x00, 0x40}, BitLength: 10}, guami.AMFSetID.Value)
	assert.Equal(t, aper.BitString{Bytes: []byte{0x00}, BitLength: 6}, guami.AMFPointer.Value)
}

func TestBitFieldWidths(t *testing.T) {
	setID, err := AMFSetIdToNgap(context.MaxValueOfSetId)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xc0}, setID.Value.Bytes)

	pointer, err := AMFPointerToNgap(context.MaxValueOfPointer)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfc}, pointer.Value.Bytes)

	_, err = AMFSetIdToNgap(context.MaxValueOfSetId + 1)
	require.Error(t, err)
	_, err = AMFPointerToNgap(context.MaxValueOfPointer + 1)
	require.Error(t, err)
}

func TestSstToNgap(t *testing.T) {
	assert.Equal(t, []byte{0x01}, []byte(SstToNgap(1).Value))
}

func TestInitAMFContext(t *testing.T) {
	cfg := factory.DefaultConfiguration()
	cfg.BindAddress.Port = 0

	amf, err := InitAMFContext(cfg)
	require.NoError(t, err)
	assert.Equal(t, "CoreKubeRS_5G_Worker", amf.Name())
	assert.Equal(t, "0.0.0.0:9977", amf.BindAddress())
	assert.True(t, amf.Multithreaded())

	cfg = factory.DefaultConfiguration()
	cfg.Guami.Pointer = 64
	_, err = InitAMFContext(cfg)
	require.ErrorIs(t, err, context.ErrInvalidGuami)

	_, err = InitAMFContext(nil)
	require.Error(t, err)
}
