// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOpts() AMFContextOpts {
	return AMFContextOpts{
		Name: "amf-test",
		Guami: Guami{
			PlmnId:   PlmnId{Mcc: 208, Mnc: 93},
			RegionId: 2,
			SetId:    1,
		},
		RelativeAMFCapacity: 255,
		SstList:             []uint8{1},
		Bind:                BindAddress{Addr: "127.0.0.1", Port: 9977},
		Multithreaded:       true,
	}
}

func TestNewAMFContext(t *testing.T) {
	amf, err := NewAMFContext(validOpts())
	require.NoError(t, err)

	assert.Equal(t, "amf-test", amf.Name())
	assert.Equal(t, uint8(255), amf.RelativeAMFCapacity())
	assert.Equal(t, []uint8{1}, amf.SstList())
	assert.Equal(t, "127.0.0.1:9977", amf.BindAddress())
	assert.True(t, amf.Multithreaded())
}

func TestNewAMFContextIsolatedFromCaller(t *testing.T) {
	opts := validOpts()
	amf, err := NewAMFContext(opts)
	require.NoError(t, err)

	opts.SstList[0] = 9
	amf.SstList()[0] = 7
	assert.Equal(t, []uint8{1}, amf.SstList())
}

func TestNewAMFContextValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AMFContextOpts)
		want   error
	}{
		{"empty name", func(o *AMFContextOpts) { o.Name = "" }, ErrInvalidAMFName},
		{"long name", func(o *AMFContextOpts) { o.Name = strings.Repeat("a", MaxLengthOfAMFName+1) }, ErrInvalidAMFName},
		{"MCC", func(o *AMFContextOpts) { o.Guami.PlmnId.Mcc = 1000 }, ErrInvalidGuami},
		{"MNC", func(o *AMFContextOpts) { o.Guami.PlmnId.Mnc = 1000 }, ErrInvalidGuami},
		{"set id", func(o *AMFContextOpts) { o.Guami.SetId = MaxValueOfSetId + 1 }, ErrInvalidGuami},
		{"pointer", func(o *AMFContextOpts) { o.Guami.Pointer = MaxValueOfPointer + 1 }, ErrInvalidGuami},
		{"no slices", func(o *AMFContextOpts) { o.SstList = nil }, ErrInvalidSlice},
		{"bind address", func(o *AMFContextOpts) { o.Bind.Addr = "not-an-ip" }, ErrInvalidBindAddr},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := validOpts()
			tc.mutate(&opts)
			_, err := NewAMFContext(opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
