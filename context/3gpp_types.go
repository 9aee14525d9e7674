// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package context

const (
	MaxValueOfMcc     uint16 = 999
	MaxValueOfMnc     uint16 = 999
	MaxValueOfSetId   uint16 = 1<<AMFSetIdBitLength - 1
	MaxValueOfPointer uint8  = 1<<AMFPointerBitLength - 1

	AMFRegionIdBitLength = 8
	AMFSetIdBitLength    = 10
	AMFPointerBitLength  = 6

	// AMFName is PrintableString (SIZE(1..150, ...)) in TS 38.413
	MaxLengthOfAMFName = 150
	MaxNumOfSliceItems = 1024
)
