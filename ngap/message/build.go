// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"errors"
	"fmt"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/util"
	"github.com/omec-project/ngap/ngapType"
)

// BuildNGSetupResponse builds the SuccessfulOutcome answering an NG Setup
// Request. All four mandatory IEs come from amf, which cannot exist
// without them.
func BuildNGSetupResponse(amf *context.AMFContext) (*ngapType.NGAPPDU, error) {
	if amf == nil {
		return nil, errors.New("AMF context is nil")
	}

	guami, err := util.GuamiToNgap(amf.Guami())
	if err != nil {
		return nil, fmt.Errorf("build served GUAMI: %w", err)
	}

	pdu := ngapType.NGAPPDU{}
	pdu.Present = ngapType.NGAPPDUPresentSuccessfulOutcome
	pdu.SuccessfulOutcome = new(ngapType.SuccessfulOutcome)

	successfulOutcome := pdu.SuccessfulOutcome
	successfulOutcome.ProcedureCode.Value = ngapType.ProcedureCodeNGSetup
	successfulOutcome.Criticality.Value = ngapType.CriticalityPresentReject
	successfulOutcome.Value.Present = ngapType.SuccessfulOutcomePresentNGSetupResponse
	successfulOutcome.Value.NGSetupResponse = new(ngapType.NGSetupResponse)

	nGSetupResponseIEs := &successfulOutcome.Value.NGSetupResponse.ProtocolIEs

	// AMFName
	ie := ngapType.NGSetupResponseIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDAMFName
	ie.Criticality.Value = ngapType.CriticalityPresentReject
	ie.Value.Present = ngapType.NGSetupResponseIEsPresentAMFName
	ie.Value.AMFName = new(ngapType.AMFName)
	ie.Value.AMFName.Value = amf.Name()

	nGSetupResponseIEs.List = append(nGSetupResponseIEs.List, ie)

	// ServedGUAMIList
	ie = ngapType.NGSetupResponseIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDServedGUAMIList
	ie.Criticality.Value = ngapType.CriticalityPresentReject
	ie.Value.Present = ngapType.NGSetupResponseIEsPresentServedGUAMIList
	ie.Value.ServedGUAMIList = new(ngapType.ServedGUAMIList)

	servedGUAMIItem := ngapType.ServedGUAMIItem{}
	servedGUAMIItem.GUAMI = guami
	ie.Value.ServedGUAMIList.List = append(ie.Value.ServedGUAMIList.List, servedGUAMIItem)

	nGSetupResponseIEs.List = append(nGSetupResponseIEs.List, ie)

	// RelativeAMFCapacity
	ie = ngapType.NGSetupResponseIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDRelativeAMFCapacity
	ie.Criticality.Value = ngapType.CriticalityPresentIgnore
	ie.Value.Present = ngapType.NGSetupResponseIEsPresentRelativeAMFCapacity
	ie.Value.RelativeAMFCapacity = new(ngapType.RelativeAMFCapacity)
	ie.Value.RelativeAMFCapacity.Value = int64(amf.RelativeAMFCapacity())

	nGSetupResponseIEs.List = append(nGSetupResponseIEs.List, ie)

	// PLMNSupportList
	ie = ngapType.NGSetupResponseIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDPLMNSupportList
	ie.Criticality.Value = ngapType.CriticalityPresentReject
	ie.Value.Present = ngapType.NGSetupResponseIEsPresentPLMNSupportList
	ie.Value.PLMNSupportList = new(ngapType.PLMNSupportList)

	pLMNSupportItem := ngapType.PLMNSupportItem{}
	pLMNSupportItem.PLMNIdentity = guami.PLMNIdentity
	for _, sst := range amf.SstList() {
		sliceSupportItem := ngapType.SliceSupportItem{}
		sliceSupportItem.SNSSAI.SST = util.SstToNgap(sst)
		pLMNSupportItem.SliceSupportList.List = append(pLMNSupportItem.SliceSupportList.List, sliceSupportItem)
	}
	ie.Value.PLMNSupportList.List = append(ie.Value.PLMNSupportList.List, pLMNSupportItem)

	nGSetupResponseIEs.List = append(nGSetupResponseIEs.List, ie)

	return &pdu, nil
}
