// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

// Package ngaptest builds the gNB side messages used by the NGAP tests.
package ngaptest

import (
	"github.com/omec-project/aper"
	"github.com/omec-project/ngap"
	"github.com/omec-project/ngap/ngapType"
)

// NGSetupRequestNervion is an NG Setup Request captured from the Nervion
// RAN emulator: gNB "Nervion", PLMN 208/93, TAC 000001, SST 1, paging
// DRX v128. ngap.Decoder rejects it ("align Bit is not zero"), so it only
// serves as an undecodable datagram.
var NGSetupRequestNervion = []byte{
	0x00, 0x15, 0x00, 0x35, 0x00, 0x00, 0x04, 0x00, 0x1b, 0x00, 0x08, 0x00,
	0x02, 0xf8, 0x39, 0x03, 0x80, 0x00, 0x04, 0x00, 0x52, 0x40, 0x09, 0x03,
	0x00, 0x4e, 0x65, 0x72, 0x76, 0x69, 0x6f, 0x6e, 0x00, 0x66, 0x00, 0x10,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02, 0xf8, 0x39, 0x00, 0x00, 0x10,
	0x08, 0x00, 0x00, 0x01, 0x00, 0x15, 0x40, 0x01, 0x40,
}

var plmn20893 = []byte{0x02, 0xf8, 0x39}

type NGSetupRequestOpts struct {
	Name                string
	// NonGNB announces the RAN node as an N3IWF instead of a gNB.
	NonGNB              bool
	OmitGlobalRANNodeID bool
	OmitSupportedTAs    bool
	OmitPagingDRX       bool
	DuplicateRANNames   []string
}

// EncodeNGSetupRequest returns the APER encoding of BuildNGSetupRequest(opts).
func EncodeNGSetupRequest(opts NGSetupRequestOpts) ([]byte, error) {
	return ngap.Encoder(*BuildNGSetupRequest(opts))
}

func BuildNGSetupRequest(opts NGSetupRequestOpts) *ngapType.NGAPPDU {
	pdu := ngapType.NGAPPDU{}
	pdu.Present = ngapType.NGAPPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(ngapType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = ngapType.ProcedureCodeNGSetup
	initiatingMessage.Criticality.Value = ngapType.CriticalityPresentReject

	initiatingMessage.Value.Present = ngapType.InitiatingMessagePresentNGSetupRequest
	initiatingMessage.Value.NGSetupRequest = new(ngapType.NGSetupRequest)

	nGSetupRequestIEs := &initiatingMessage.Value.NGSetupRequest.ProtocolIEs

	// GlobalRANNodeID
	var ie ngapType.NGSetupRequestIEs
	if !opts.OmitGlobalRANNodeID {
		ie.Id.Value = ngapType.ProtocolIEIDGlobalRANNodeID
		ie.Criticality.Value = ngapType.CriticalityPresentReject
		ie.Value.Present = ngapType.NGSetupRequestIEsPresentGlobalRANNodeID
		ie.Value.GlobalRANNodeID = new(ngapType.GlobalRANNodeID)

		globalRANNodeID := ie.Value.GlobalRANNodeID
		if opts.NonGNB {
			globalRANNodeID.Present = ngapType.GlobalRANNodeIDPresentGlobalN3IWFID
			globalRANNodeID.GlobalN3IWFID = new(ngapType.GlobalN3IWFID)
			globalRANNodeID.GlobalN3IWFID.PLMNIdentity.Value = plmn20893
		} else {
			globalRANNodeID.Present = ngapType.GlobalRANNodeIDPresentGlobalGNBID
			globalRANNodeID.GlobalGNBID = new(ngapType.GlobalGNBID)

			globalGNBID := globalRANNodeID.GlobalGNBID
			globalGNBID.PLMNIdentity.Value = plmn20893
			globalGNBID.GNBID.Present = ngapType.GNBIDPresentGNBID
			globalGNBID.GNBID.GNBID = &aper.BitString{
				Bytes:     []byte{0x00, 0x00, 0x01},
				BitLength: 24,
			}
		}

		nGSetupRequestIEs.List = append(nGSetupRequestIEs.List, ie)
	}

	// RANNodeName
	for _, name := range append([]string{opts.Name}, opts.DuplicateRANNames...) {
		if name == "" {
			continue
		}
		ie = ngapType.NGSetupRequestIEs{}
		ie.Id.Value = ngapType.ProtocolIEIDRANNodeName
		ie.Criticality.Value = ngapType.CriticalityPresentIgnore
		ie.Value.Present = ngapType.NGSetupRequestIEsPresentRANNodeName
		ie.Value.RANNodeName = new(ngapType.RANNodeName)
		ie.Value.RANNodeName.Value = name

		nGSetupRequestIEs.List = append(nGSetupRequestIEs.List, ie)
	}

	// SupportedTAList
	if !opts.OmitSupportedTAs {
		ie = ngapType.NGSetupRequestIEs{}
		ie.Id.Value = ngapType.ProtocolIEIDSupportedTAList
		ie.Criticality.Value = ngapType.CriticalityPresentReject
		ie.Value.Present = ngapType.NGSetupRequestIEsPresentSupportedTAList
		ie.Value.SupportedTAList = new(ngapType.SupportedTAList)

		supportedTAItem := ngapType.SupportedTAItem{}
		supportedTAItem.TAC.Value = []byte{0x00, 0x00, 0x01}

		broadcastPLMNItem := ngapType.BroadcastPLMNItem{}
		broadcastPLMNItem.PLMNIdentity.Value = plmn20893

		sliceSupportItem := ngapType.SliceSupportItem{}
		sliceSupportItem.SNSSAI.SST.Value = []byte{0x01}
		broadcastPLMNItem.TAISliceSupportList.List = append(broadcastPLMNItem.TAISliceSupportList.List, sliceSupportItem)

		supportedTAItem.BroadcastPLMNList.List = append(supportedTAItem.BroadcastPLMNList.List, broadcastPLMNItem)
		ie.Value.SupportedTAList.List = append(ie.Value.SupportedTAList.List, supportedTAItem)

		nGSetupRequestIEs.List = append(nGSetupRequestIEs.List, ie)
	}

	// DefaultPagingDRX
	if !opts.OmitPagingDRX {
		ie = ngapType.NGSetupRequestIEs{}
		ie.Id.Value = ngapType.ProtocolIEIDDefaultPagingDRX
		ie.Criticality.Value = ngapType.CriticalityPresentIgnore
		ie.Value.Present = ngapType.NGSetupRequestIEsPresentDefaultPagingDRX
		ie.Value.DefaultPagingDRX = new(ngapType.PagingDRX)
		ie.Value.DefaultPagingDRX.Value = ngapType.PagingDRXPresentV128

		nGSetupRequestIEs.List = append(nGSetupRequestIEs.List, ie)
	}

	return &pdu
}

type InitialUEMessageOpts struct {
	RanUENGAPID int64
	NasPDU      []byte
	// NonNR reports the UE location as untrusted non-3GPP access.
	NonNR       bool
	OmitNasPDU  bool
	OmitULI     bool
}

func BuildInitialUEMessage(opts InitialUEMessageOpts) *ngapType.NGAPPDU {
	pdu := ngapType.NGAPPDU{}
	pdu.Present = ngapType.NGAPPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(ngapType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = ngapType.ProcedureCodeInitialUEMessage
	initiatingMessage.Criticality.Value = ngapType.CriticalityPresentIgnore

	initiatingMessage.Value.Present = ngapType.InitiatingMessagePresentInitialUEMessage
	initiatingMessage.Value.InitialUEMessage = new(ngapType.InitialUEMessage)

	initialUEMessageIEs := &initiatingMessage.Value.InitialUEMessage.ProtocolIEs

	// RAN UE NGAP ID
	ie := ngapType.InitialUEMessageIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDRANUENGAPID
	ie.Criticality.Value = ngapType.CriticalityPresentReject
	ie.Value.Present = ngapType.InitialUEMessageIEsPresentRANUENGAPID
	ie.Value.RANUENGAPID = new(ngapType.RANUENGAPID)
	ie.Value.RANUENGAPID.Value = opts.RanUENGAPID

	initialUEMessageIEs.List = append(initialUEMessageIEs.List, ie)

	// NAS-PDU
	if !opts.OmitNasPDU {
		ie = ngapType.InitialUEMessageIEs{}
		ie.Id.Value = ngapType.ProtocolIEIDNASPDU
		ie.Criticality.Value = ngapType.CriticalityPresentReject
		ie.Value.Present = ngapType.InitialUEMessageIEsPresentNASPDU
		ie.Value.NASPDU = new(ngapType.NASPDU)
		ie.Value.NASPDU.Value = opts.NasPDU

		initialUEMessageIEs.List = append(initialUEMessageIEs.List, ie)
	}

	// User Location Information
	if !opts.OmitULI {
		ie = ngapType.InitialUEMessageIEs{}
		ie.Id.Value = ngapType.ProtocolIEIDUserLocationInformation
		ie.Criticality.Value = ngapType.CriticalityPresentReject
		ie.Value.Present = ngapType.InitialUEMessageIEsPresentUserLocationInformation
		ie.Value.UserLocationInformation = new(ngapType.UserLocationInformation)

		userLocationInformation := ie.Value.UserLocationInformation
		if opts.NonNR {
			userLocationInformation.Present = ngapType.UserLocationInformationPresentUserLocationInformationN3IWF
			userLocationInformation.UserLocationInformationN3IWF = new(ngapType.UserLocationInformationN3IWF)
		} else {
			userLocationInformation.Present = ngapType.UserLocationInformationPresentUserLocationInformationNR
			userLocationInformation.UserLocationInformationNR = new(ngapType.UserLocationInformationNR)

			userLocationInformationNR := userLocationInformation.UserLocationInformationNR
			userLocationInformationNR.NRCGI.PLMNIdentity.Value = plmn20893
			userLocationInformationNR.NRCGI.NRCellIdentity.Value = aper.BitString{
				Bytes:     []byte{0x00, 0x00, 0x01, 0x00, 0x10},
				BitLength: 36,
			}
			userLocationInformationNR.TAI.PLMNIdentity.Value = plmn20893
			userLocationInformationNR.TAI.TAC.Value = []byte{0x00, 0x00, 0x01}
		}

		initialUEMessageIEs.List = append(initialUEMessageIEs.List, ie)
	}

	// RRC Establishment Cause
	ie = ngapType.InitialUEMessageIEs{}
	ie.Id.Value = ngapType.ProtocolIEIDRRCEstablishmentCause
	ie.Criticality.Value = ngapType.CriticalityPresentIgnore
	ie.Value.Present = ngapType.InitialUEMessageIEsPresentRRCEstablishmentCause
	ie.Value.RRCEstablishmentCause = new(ngapType.RRCEstablishmentCause)
	ie.Value.RRCEstablishmentCause.Value = ngapType.RRCEstablishmentCausePresentMoSignalling

	initialUEMessageIEs.List = append(initialUEMessageIEs.List, ie)

	return &pdu
}

