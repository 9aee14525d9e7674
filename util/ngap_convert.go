// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"encoding/binary"
	"fmt"

	"github.com/omec-project/aper"
	"github.com/omec-project/corekube/context"
	"github.com/omec-project/ngap/ngapType"
)

// mncFiller marks the absent third MNC digit of a 2-digit MNC
const mncFiller = 0x0f

// EncodePLMN packs mcc and mnc into the 3-octet TBCD PLMN identity of
// TS 38.413 9.3.3.5:
//
//	octet 1: MCC digit 2 | MCC digit 1
//	octet 2: MNC digit 1 | MCC digit 3  (0xF when the MNC has two digits)
//	octet 3: MNC digit 3 | MNC digit 2
func EncodePLMN(mcc, mnc uint16) ([3]byte, error) {
	var plmn [3]byte
	if mcc > context.MaxValueOfMcc {
		return plmn, fmt.Errorf("MCC %d out of range", mcc)
	}
	if mnc > context.MaxValueOfMnc {
		return plmn, fmt.Errorf("MNC %d out of range", mnc)
	}

	mcc1, mcc2, mcc3 := byte(mcc/100), byte(mcc/10%10), byte(mcc%10)
	mnc1, mnc2, mnc3 := byte(mnc/100), byte(mnc/10%10), byte(mnc%10)
	if mnc1 == 0 {
		mnc1 = mncFiller
	}

	plmn[0] = mcc2<<4 | mcc1
	plmn[1] = mnc1<<4 | mcc3
	plmn[2] = mnc3<<4 | mnc2
	return plmn, nil
}

func PlmnIdToNgap(plmnId context.PlmnId) (ngapPlmnId ngapType.PLMNIdentity, err error) {
	plmn, err := EncodePLMN(plmnId.Mcc, plmnId.Mnc)
	if err != nil {
		return ngapPlmnId, err
	}
	ngapPlmnId.Value = plmn[:]
	return ngapPlmnId, nil
}

// bitFieldToNgap left-aligns the low bitLength bits of value into a BitString.
func bitFieldToNgap(value uint16, bitLength uint64) (aper.BitString, error) {
	if bitLength == 0 || bitLength > 16 || uint64(value)>>bitLength != 0 {
		return aper.BitString{}, fmt.Errorf("value %d does not fit in %d bits", value, bitLength)
	}
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, value<<(16-bitLength))
	return aper.BitString{
		Bytes:     buf[:(bitLength+7)/8],
		BitLength: bitLength,
	}, nil
}

func AMFRegionIdToNgap(regionId uint8) (ngapRegionId ngapType.AMFRegionID, err error) {
	ngapRegionId.Value, err = bitFieldToNgap(uint16(regionId), context.AMFRegionIdBitLength)
	return
}

func AMFSetIdToNgap(setId uint16) (ngapSetId ngapType.AMFSetID, err error) {
	ngapSetId.Value, err = bitFieldToNgap(setId, context.AMFSetIdBitLength)
	return
}

func AMFPointerToNgap(pointer uint8) (ngapPointer ngapType.AMFPointer, err error) {
	ngapPointer.Value, err = bitFieldToNgap(uint16(pointer), context.AMFPointerBitLength)
	return
}

// GuamiToNgap converts the configured GUAMI into its NGAP form.
func GuamiToNgap(guami context.Guami) (ngapGuami ngapType.GUAMI, err error) {
	if ngapGuami.PLMNIdentity, err = PlmnIdToNgap(guami.PlmnId); err != nil {
		return
	}
	if ngapGuami.AMFRegionID, err = AMFRegionIdToNgap(guami.RegionId); err != nil {
		return
	}
	if ngapGuami.AMFSetID, err = AMFSetIdToNgap(guami.SetId); err != nil {
		return
	}
	ngapGuami.AMFPointer, err = AMFPointerToNgap(guami.Pointer)
	return
}

func SstToNgap(sst uint8) (ngapSst ngapType.SST) {
	ngapSst.Value = []byte{sst}
	return
}
