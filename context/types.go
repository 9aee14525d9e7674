// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package context

type PlmnId struct {
	Mcc uint16 `yaml:"mcc"` // 0..999
	Mnc uint16 `yaml:"mnc"` // 0..999, below 100 is coded as a 2-digit MNC
}

// Guami identifies this AMF instance. RegionId, SetId and Pointer are
// fixed-width bit fields of 8, 10 and 6 bits.
type Guami struct {
	PlmnId   PlmnId `yaml:"plmnId"`
	RegionId uint8  `yaml:"amfRegionId"`
	SetId    uint16 `yaml:"amfSetId"`
	Pointer  uint8  `yaml:"amfPointer"`
}

type BindAddress struct {
	Addr string `yaml:"addr"`
	Port uint16 `yaml:"port"`
}
