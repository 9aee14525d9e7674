// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"fmt"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/logger"
	"github.com/omec-project/corekube/nas"
	ngap_message "github.com/omec-project/corekube/ngap/message"
	"github.com/omec-project/ngap/ngapType"
)

var (
	ngSetupRequestIEs = []IESpec{
		{ngapType.ProtocolIEIDGlobalRANNodeID, "GlobalRANNodeID"},
		{ngapType.ProtocolIEIDRANNodeName, "RANNodeName"},
		{ngapType.ProtocolIEIDSupportedTAList, "SupportedTAList"},
		{ngapType.ProtocolIEIDDefaultPagingDRX, "DefaultPagingDRX"},
	}
	initialUEMessageIEs = []IESpec{
		{ngapType.ProtocolIEIDRANUENGAPID, "RANUENGAPID"},
		{ngapType.ProtocolIEIDNASPDU, "NASPDU"},
		{ngapType.ProtocolIEIDUserLocationInformation, "UserLocationInformation"},
		{ngapType.ProtocolIEIDRRCEstablishmentCause, "RRCEstablishmentCause"},
		{ngapType.ProtocolIEIDFiveGSTMSI, "FiveGSTMSI"},
		{ngapType.ProtocolIEIDAMFSetID, "AMFSetID"},
		{ngapType.ProtocolIEIDUEContextRequest, "UEContextRequest"},
		{ngapType.ProtocolIEIDAllowedNSSAI, "AllowedNSSAI"},
	}
	uplinkNASTransportIEs = []IESpec{
		{ngapType.ProtocolIEIDAMFUENGAPID, "AMFUENGAPID"},
		{ngapType.ProtocolIEIDRANUENGAPID, "RANUENGAPID"},
		{ngapType.ProtocolIEIDNASPDU, "NASPDU"},
		{ngapType.ProtocolIEIDUserLocationInformation, "UserLocationInformation"},
	}
)

func HandleNGSetupRequest(amf *context.AMFContext, message *ngapType.NGAPPDU) []ngap_message.Response {
	logger.NgapLog.Infoln("handle NG Setup Request")

	if message == nil {
		logger.NgapLog.Errorln("NGAP Message is nil")
		return nil
	}

	initiatingMessage := message.InitiatingMessage
	if initiatingMessage == nil {
		logger.NgapLog.Errorln("initiatingMessage is nil")
		return nil
	}

	ngSetupRequest := initiatingMessage.Value.NGSetupRequest
	if ngSetupRequest == nil {
		logger.NgapLog.Errorln("ngSetupRequest is nil")
		return nil
	}

	entries := make([]IEEntry, 0, len(ngSetupRequest.ProtocolIEs.List))
	for _, ie := range ngSetupRequest.ProtocolIEs.List {
		entry := IEEntry{ID: ie.Id.Value, Criticality: ie.Criticality.Value}
		switch ie.Id.Value {
		case ngapType.ProtocolIEIDGlobalRANNodeID:
			entry.Value = ie.Value.GlobalRANNodeID
		case ngapType.ProtocolIEIDRANNodeName:
			entry.Value = ie.Value.RANNodeName
		case ngapType.ProtocolIEIDSupportedTAList:
			entry.Value = ie.Value.SupportedTAList
		case ngapType.ProtocolIEIDDefaultPagingDRX:
			entry.Value = ie.Value.DefaultPagingDRX
		}
		entries = append(entries, entry)
	}

	ies := ExtractIEs("NGSetupRequest", entries, ngSetupRequestIEs...)
	if err := validateNGSetupRequest(ies); err != nil {
		logger.NgapLog.Errorf("drop NG Setup Request: %+v", err)
		return nil
	}

	if ranNodeName, ok := IEValue[*ngapType.RANNodeName](ies, ngapType.ProtocolIEIDRANNodeName); ok {
		logger.NgapLog.Infof("NG Setup from gNB[%s]", ranNodeName.Value)
	}

	pdu, err := ngap_message.BuildNGSetupResponse(amf)
	if err != nil {
		logger.NgapLog.Errorf("build NG Setup Response failed: %+v", err)
		return nil
	}

	return []ngap_message.Response{{Stream: ngap_message.NonUEAssociatedStream, PDU: pdu}}
}

func validateNGSetupRequest(ies *IETable) error {
	if err := ies.Require(
		ngapType.ProtocolIEIDGlobalRANNodeID,
		ngapType.ProtocolIEIDSupportedTAList,
		ngapType.ProtocolIEIDDefaultPagingDRX,
	); err != nil {
		return err
	}

	globalRANNodeID, _ := IEValue[*ngapType.GlobalRANNodeID](ies, ngapType.ProtocolIEIDGlobalRANNodeID)
	if globalRANNodeID.Present != ngapType.GlobalRANNodeIDPresentGlobalGNBID || globalRANNodeID.GlobalGNBID == nil {
		return fmt.Errorf("GlobalRANNodeID present %d: %w", globalRANNodeID.Present, ErrUnsupportedIE)
	}
	return nil
}

func HandleInitialUEMessage(amf *context.AMFContext, message *ngapType.NGAPPDU) []ngap_message.Response {
	logger.NgapLog.Infoln("handle Initial UE Message")

	if message == nil {
		logger.NgapLog.Errorln("NGAP Message is nil")
		return nil
	}

	initiatingMessage := message.InitiatingMessage
	if initiatingMessage == nil {
		logger.NgapLog.Errorln("initiatingMessage is nil")
		return nil
	}

	initialUEMessage := initiatingMessage.Value.InitialUEMessage
	if initialUEMessage == nil {
		logger.NgapLog.Errorln("initialUEMessage is nil")
		return nil
	}

	entries := make([]IEEntry, 0, len(initialUEMessage.ProtocolIEs.List))
	for _, ie := range initialUEMessage.ProtocolIEs.List {
		entry := IEEntry{ID: ie.Id.Value, Criticality: ie.Criticality.Value}
		switch ie.Id.Value {
		case ngapType.ProtocolIEIDRANUENGAPID:
			entry.Value = ie.Value.RANUENGAPID
		case ngapType.ProtocolIEIDNASPDU:
			entry.Value = ie.Value.NASPDU
		case ngapType.ProtocolIEIDUserLocationInformation:
			entry.Value = ie.Value.UserLocationInformation
		case ngapType.ProtocolIEIDRRCEstablishmentCause:
			entry.Value = ie.Value.RRCEstablishmentCause
		case ngapType.ProtocolIEIDFiveGSTMSI:
			entry.Value = ie.Value.FiveGSTMSI
		case ngapType.ProtocolIEIDAMFSetID:
			entry.Value = ie.Value.AMFSetID
		case ngapType.ProtocolIEIDUEContextRequest:
			entry.Value = ie.Value.UEContextRequest
		case ngapType.ProtocolIEIDAllowedNSSAI:
			entry.Value = ie.Value.AllowedNSSAI
		}
		entries = append(entries, entry)
	}

	ies := ExtractIEs("InitialUEMessage", entries, initialUEMessageIEs...)
	if err := validateInitialUEMessage(ies); err != nil {
		logger.NgapLog.Errorf("drop Initial UE Message: %+v", err)
		return nil
	}

	ranUeNgapID, _ := IEValue[*ngapType.RANUENGAPID](ies, ngapType.ProtocolIEIDRANUENGAPID)
	nasPDU, _ := IEValue[*ngapType.NASPDU](ies, ngapType.ProtocolIEIDNASPDU)
	logger.NgapLog.Debugf("RAN UE NGAP ID[%d] NAS PDU %d bytes", ranUeNgapID.Value, len(nasPDU.Value))

	handleNASPDU(ranUeNgapID.Value, nasPDU.Value)

	// Registration handling is not implemented, so nothing is sent back.
	return nil
}

func validateInitialUEMessage(ies *IETable) error {
	if err := ies.Require(
		ngapType.ProtocolIEIDRANUENGAPID,
		ngapType.ProtocolIEIDNASPDU,
		ngapType.ProtocolIEIDUserLocationInformation,
	); err != nil {
		return err
	}

	userLocationInformation, _ := IEValue[*ngapType.UserLocationInformation](
		ies, ngapType.ProtocolIEIDUserLocationInformation)
	if userLocationInformation.Present != ngapType.UserLocationInformationPresentUserLocationInformationNR ||
		userLocationInformation.UserLocationInformationNR == nil {
		return fmt.Errorf("UserLocationInformation present %d: %w", userLocationInformation.Present, ErrUnsupportedIE)
	}
	return nil
}

// handleNASPDU classifies the NAS PDU of a UE and logs what it carries.
func handleNASPDU(ranUeNgapID int64, pdu []byte) {
	envelope, err := nas.Parse(pdu, nas.ParseOptions{Inner: true})
	if err != nil {
		var cause nas.Cause
		if errors.As(err, &cause) {
			logger.NasLog.Warnf("RAN UE NGAP ID[%d] NAS message rejected with cause %d: %+v", ranUeNgapID, uint8(cause), err)
		} else {
			logger.NasLog.Errorf("RAN UE NGAP ID[%d] parse NAS message: %+v", ranUeNgapID, err)
		}
		return
	}

	plain := envelope.Plain()
	if plain == nil {
		logger.NasLog.Infof("RAN UE NGAP ID[%d] %s message, header %s, not unwrapped",
			ranUeNgapID, envelope.ProtocolDiscriminator, envelope.SecurityHeader)
		return
	}
	logger.NasLog.Infof("RAN UE NGAP ID[%d] %s %s", ranUeNgapID, plain.ProtocolDiscriminator, plain.MessageType)

	if _, err := envelope.Decode(); err != nil {
		logger.NasLog.Debugf("RAN UE NGAP ID[%d] NAS decode: %+v", ranUeNgapID, err)
	}
}

func HandleUplinkNASTransport(amf *context.AMFContext, message *ngapType.NGAPPDU) []ngap_message.Response {
	logger.NgapLog.Infoln("handle Uplink NAS Transport")

	if message == nil {
		logger.NgapLog.Errorln("NGAP Message is nil")
		return nil
	}

	initiatingMessage := message.InitiatingMessage
	if initiatingMessage == nil {
		logger.NgapLog.Errorln("initiatingMessage is nil")
		return nil
	}

	uplinkNasTransport := initiatingMessage.Value.UplinkNASTransport
	if uplinkNasTransport == nil {
		logger.NgapLog.Errorln("uplinkNasTransport is nil")
		return nil
	}

	entries := make([]IEEntry, 0, len(uplinkNasTransport.ProtocolIEs.List))
	for _, ie := range uplinkNasTransport.ProtocolIEs.List {
		entry := IEEntry{ID: ie.Id.Value, Criticality: ie.Criticality.Value}
		switch ie.Id.Value {
		case ngapType.ProtocolIEIDAMFUENGAPID:
			entry.Value = ie.Value.AMFUENGAPID
		case ngapType.ProtocolIEIDRANUENGAPID:
			entry.Value = ie.Value.RANUENGAPID
		case ngapType.ProtocolIEIDNASPDU:
			entry.Value = ie.Value.NASPDU
		case ngapType.ProtocolIEIDUserLocationInformation:
			entry.Value = ie.Value.UserLocationInformation
		}
		entries = append(entries, entry)
	}

	ies := ExtractIEs("UplinkNASTransport", entries, uplinkNASTransportIEs...)
	if nasPDU, ok := IEValue[*ngapType.NASPDU](ies, ngapType.ProtocolIEIDNASPDU); ok {
		logger.NgapLog.Debugf("Uplink NAS Transport carries %d bytes of NAS", len(nasPDU.Value))
	}

	// NAS forwarding is not implemented; the message is accepted and dropped.
	return nil
}
