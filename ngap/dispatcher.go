// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package ngap

import (
	"fmt"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/logger"
	"github.com/omec-project/corekube/ngap/handler"
	"github.com/omec-project/corekube/ngap/message"
	"github.com/omec-project/corekube/ngap/ngapmsgtypes"
	"github.com/omec-project/corekube/util"
	"github.com/omec-project/ngap"
	"github.com/omec-project/ngap/ngapType"
)

// Dispatch decodes one NGAP PDU, runs the handler of its procedure and
// returns the encoded responses. A PDU that does not decode is reported as
// an error; nothing is answered in that case.
func Dispatch(amf *context.AMFContext, msg []byte) ([]message.EncodedResponse, error) {
	pdu, err := decode(msg)
	if err != nil {
		return nil, fmt.Errorf("NGAP decode error: %w", err)
	}

	var responses []message.Response

	switch pdu.Present {
	case ngapType.NGAPPDUPresentInitiatingMessage:
		initiatingMessage := pdu.InitiatingMessage
		if initiatingMessage == nil {
			logger.NgapLog.Errorln("InitiatingMessage is nil")
			return nil, nil
		}

		switch initiatingMessage.ProcedureCode.Value {
		case ngapType.ProcedureCodeNGSetup:
			responses = handler.HandleNGSetupRequest(amf, pdu)
		case ngapType.ProcedureCodeInitialUEMessage:
			responses = handler.HandleInitialUEMessage(amf, pdu)
		case ngapType.ProcedureCodeUplinkNASTransport:
			responses = handler.HandleUplinkNASTransport(amf, pdu)
		default:
			logger.NgapLog.Warnf("not implemented NGAP message (initiatingMessage), procedure:%s",
				ngapmsgtypes.ProcedureName(initiatingMessage.ProcedureCode.Value))
		}
	case ngapType.NGAPPDUPresentSuccessfulOutcome:
		successfulOutcome := pdu.SuccessfulOutcome
		if successfulOutcome == nil {
			logger.NgapLog.Errorln("successful Outcome is nil")
			return nil, nil
		}
		logger.NgapLog.Warnf("not implemented NGAP message (successfulOutcome), procedure:%s",
			ngapmsgtypes.ProcedureName(successfulOutcome.ProcedureCode.Value))
	case ngapType.NGAPPDUPresentUnsuccessfulOutcome:
		unsuccessfulOutcome := pdu.UnsuccessfulOutcome
		if unsuccessfulOutcome == nil {
			logger.NgapLog.Errorln("unsuccessful Outcome is nil")
			return nil, nil
		}
		logger.NgapLog.Warnf("not implemented NGAP message (unsuccessfulOutcome), procedure:%s",
			ngapmsgtypes.ProcedureName(unsuccessfulOutcome.ProcedureCode.Value))
	default:
		logger.NgapLog.Warnf("unknown NGAP PDU type %d", pdu.Present)
	}

	encoded := make([]message.EncodedResponse, 0, len(responses))
	for _, resp := range responses {
		buf, err := encode(resp.PDU)
		if err != nil {
			logger.NgapLog.Errorf("NGAP encode error: %+v", err)
			continue
		}
		encoded = append(encoded, message.EncodedResponse{Stream: resp.Stream, Buf: buf})
	}
	return encoded, nil
}

// decode runs the codec on untrusted bytes; a codec panic becomes an error.
func decode(msg []byte) (pdu *ngapType.NGAPPDU, err error) {
	defer util.RecoverToError(logger.NgapLog, &err)

	pdu, err = ngap.Decoder(msg)
	if err == nil && pdu == nil {
		err = fmt.Errorf("decoder returned no PDU")
	}
	return pdu, err
}

// encode returns a freshly allocated buffer for every PDU.
func encode(pdu *ngapType.NGAPPDU) (buf []byte, err error) {
	defer util.RecoverToError(logger.NgapLog, &err)

	if pdu == nil {
		return nil, fmt.Errorf("response PDU is nil")
	}
	return ngap.Encoder(*pdu)
}
