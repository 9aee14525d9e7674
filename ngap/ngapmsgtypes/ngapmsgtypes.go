// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

// Package ngapmsgtypes names NGAP elementary procedures for log lines.
package ngapmsgtypes

import (
	"fmt"

	"github.com/omec-project/ngap/ngapType"
)

var procedureNames = map[int64]string{
	ngapType.ProcedureCodeAMFConfigurationUpdate:                "AMFConfigurationUpdate",
	ngapType.ProcedureCodeAMFStatusIndication:                   "AMFStatusIndication",
	ngapType.ProcedureCodeCellTrafficTrace:                      "CellTrafficTrace",
	ngapType.ProcedureCodeDeactivateTrace:                       "DeactivateTrace",
	ngapType.ProcedureCodeDownlinkNASTransport:                  "DownlinkNASTransport",
	ngapType.ProcedureCodeDownlinkNonUEAssociatedNRPPaTransport: "DownlinkNonUEAssociatedNRPPaTransport",
	ngapType.ProcedureCodeDownlinkRANConfigurationTransfer:      "DownlinkRANConfigurationTransfer",
	ngapType.ProcedureCodeDownlinkRANStatusTransfer:             "DownlinkRANStatusTransfer",
	ngapType.ProcedureCodeDownlinkUEAssociatedNRPPaTransport:    "DownlinkUEAssociatedNRPPaTransport",
	ngapType.ProcedureCodeErrorIndication:                       "ErrorIndication",
	ngapType.ProcedureCodeHandoverCancel:                        "HandoverCancel",
	ngapType.ProcedureCodeHandoverNotification:                  "HandoverNotification",
	ngapType.ProcedureCodeHandoverPreparation:                   "HandoverPreparation",
	ngapType.ProcedureCodeHandoverResourceAllocation:            "HandoverResourceAllocation",
	ngapType.ProcedureCodeInitialContextSetup:                   "InitialContextSetup",
	ngapType.ProcedureCodeInitialUEMessage:                      "InitialUEMessage",
	ngapType.ProcedureCodeLocationReportingControl:              "LocationReportingControl",
	ngapType.ProcedureCodeLocationReportingFailureIndication:    "LocationReportingFailureIndication",
	ngapType.ProcedureCodeLocationReport:                        "LocationReport",
	ngapType.ProcedureCodeNASNonDeliveryIndication:              "NASNonDeliveryIndication",
	ngapType.ProcedureCodeNGReset:                               "NGReset",
	ngapType.ProcedureCodeNGSetup:                               "NGSetup",
	ngapType.ProcedureCodeOverloadStart:                         "OverloadStart",
	ngapType.ProcedureCodeOverloadStop:                          "OverloadStop",
	ngapType.ProcedureCodePaging:                                "Paging",
	ngapType.ProcedureCodePathSwitchRequest:                     "PathSwitchRequest",
	ngapType.ProcedureCodePDUSessionResourceModify:              "PDUSessionResourceModify",
	ngapType.ProcedureCodePDUSessionResourceModifyIndication:    "PDUSessionResourceModifyIndication",
	ngapType.ProcedureCodePDUSessionResourceRelease:             "PDUSessionResourceRelease",
	ngapType.ProcedureCodePDUSessionResourceSetup:               "PDUSessionResourceSetup",
	ngapType.ProcedureCodePDUSessionResourceNotify:              "PDUSessionResourceNotify",
	ngapType.ProcedureCodePrivateMessage:                        "PrivateMessage",
	ngapType.ProcedureCodePWSCancel:                             "PWSCancel",
	ngapType.ProcedureCodePWSFailureIndication:                  "PWSFailureIndication",
	ngapType.ProcedureCodePWSRestartIndication:                  "PWSRestartIndication",
	ngapType.ProcedureCodeRANConfigurationUpdate:                "RANConfigurationUpdate",
	ngapType.ProcedureCodeRerouteNASRequest:                     "RerouteNASRequest",
	ngapType.ProcedureCodeRRCInactiveTransitionReport:           "RRCInactiveTransitionReport",
	ngapType.ProcedureCodeTraceFailureIndication:                "TraceFailureIndication",
	ngapType.ProcedureCodeTraceStart:                            "TraceStart",
	ngapType.ProcedureCodeUEContextModification:                 "UEContextModification",
	ngapType.ProcedureCodeUEContextRelease:                      "UEContextRelease",
	ngapType.ProcedureCodeUEContextReleaseRequest:               "UEContextReleaseRequest",
	ngapType.ProcedureCodeUERadioCapabilityCheck:                "UERadioCapabilityCheck",
	ngapType.ProcedureCodeUERadioCapabilityInfoIndication:       "UERadioCapabilityInfoIndication",
	ngapType.ProcedureCodeUETNLABindingRelease:                  "UETNLABindingRelease",
	ngapType.ProcedureCodeUplinkNASTransport:                    "UplinkNASTransport",
	ngapType.ProcedureCodeUplinkNonUEAssociatedNRPPaTransport:   "UplinkNonUEAssociatedNRPPaTransport",
	ngapType.ProcedureCodeUplinkRANConfigurationTransfer:        "UplinkRANConfigurationTransfer",
	ngapType.ProcedureCodeUplinkRANStatusTransfer:               "UplinkRANStatusTransfer",
	ngapType.ProcedureCodeUplinkUEAssociatedNRPPaTransport:      "UplinkUEAssociatedNRPPaTransport",
	ngapType.ProcedureCodeWriteReplaceWarning:                   "WriteReplaceWarning",
	ngapType.ProcedureCodeSecondaryRATDataUsageReport:           "SecondaryRATDataUsageReport",
}

// ProcedureName returns the NGAP elementary procedure name for code, or a
// numeric placeholder for codes this table does not know.
func ProcedureName(code int64) string {
	if name, ok := procedureNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", code)
}
