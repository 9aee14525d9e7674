// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package nas

import (
	"fmt"

	libnas "github.com/free5gc/nas"
	"github.com/free5gc/nas/nasMessage"
)

// Cause is a 5GMM cause value (TS 24.501 9.11.3.2) reported when an
// envelope cannot be classified.
type Cause uint8

const (
	CauseInvalidMandatoryInfo     = Cause(nasMessage.Cause5GMMInvalidMandatoryInformation)
	CauseMessageTypeNonExistent   = Cause(nasMessage.Cause5GMMMessageTypeNonExistentOrNotImplemented)
	CauseUnspecifiedProtocolError = Cause(nasMessage.Cause5GMMProtocolErrorUnspecified)
)

func (c Cause) Error() string {
	switch c {
	case CauseInvalidMandatoryInfo:
		return "NAS cause 96: invalid mandatory information"
	case CauseMessageTypeNonExistent:
		return "NAS cause 97: message type non-existent or not implemented"
	case CauseUnspecifiedProtocolError:
		return "NAS cause 111: protocol error, unspecified"
	default:
		return fmt.Sprintf("NAS cause %d", uint8(c))
	}
}

type ProtocolDiscriminator uint8

const (
	MobilityManagement = ProtocolDiscriminator(nasMessage.Epd5GSMobilityManagementMessage)
	SessionManagement  = ProtocolDiscriminator(nasMessage.Epd5GSSessionManagementMessage)
)

func (p ProtocolDiscriminator) String() string {
	switch p {
	case MobilityManagement:
		return "5GMM"
	case SessionManagement:
		return "5GSM"
	default:
		return fmt.Sprintf("EPD(0x%02x)", uint8(p))
	}
}

type SecurityHeaderType uint8

const (
	NotProtected       = SecurityHeaderType(libnas.SecurityHeaderTypePlainNas)
	IntegrityProtected = SecurityHeaderType(libnas.SecurityHeaderTypeIntegrityProtected)

	// The ciphered and new-context values sit one above their
	// libnas.SecurityHeaderType* counterparts: 2 is not recognized.
	IntegrityProtectedAndCiphered SecurityHeaderType = 3

	// only used with Security Mode Command
	IntegrityProtectedWithNewSecurityContext SecurityHeaderType = 4

	// only used with Security Mode Complete
	IntegrityProtectedAndCipheredWithNewSecurityContext SecurityHeaderType = 5

	// SecurityHeaderAbsent stands for a header octet that is none of the
	// values above.
	SecurityHeaderAbsent SecurityHeaderType = 0xff
)

func parseSecurityHeaderType(b byte) SecurityHeaderType {
	switch SecurityHeaderType(b) {
	case NotProtected, IntegrityProtected, IntegrityProtectedAndCiphered,
		IntegrityProtectedWithNewSecurityContext, IntegrityProtectedAndCipheredWithNewSecurityContext:
		return SecurityHeaderType(b)
	default:
		return SecurityHeaderAbsent
	}
}

// Protected reports whether the header announces a security-protected frame.
func (s SecurityHeaderType) Protected() bool {
	return s != NotProtected && s != SecurityHeaderAbsent
}

// Ciphered reports whether the inner message is ciphered.
func (s SecurityHeaderType) Ciphered() bool {
	return s == IntegrityProtectedAndCiphered || s == IntegrityProtectedAndCipheredWithNewSecurityContext
}

func (s SecurityHeaderType) String() string {
	switch s {
	case NotProtected:
		return "NotProtected"
	case IntegrityProtected:
		return "IntegrityProtected"
	case IntegrityProtectedAndCiphered:
		return "IntegrityProtectedAndCiphered"
	case IntegrityProtectedWithNewSecurityContext:
		return "IntegrityProtectedWithNewSecurityContext"
	case IntegrityProtectedAndCipheredWithNewSecurityContext:
		return "IntegrityProtectedAndCipheredWithNewSecurityContext"
	default:
		return "Absent"
	}
}

// MessageType is a 5GMM or 5GSM message identifier.
type MessageType uint8

const (
	mmMessageTypePrefix = 0x40
	smMessageTypePrefix = 0xc0
	messageTypeMask     = 0xc0
)

// 5GMM message types (TS 24.501 9.7 table 9.7.1)
const (
	MsgTypeRegistrationRequest                = MessageType(libnas.MsgTypeRegistrationRequest)
	MsgTypeRegistrationAccept                 = MessageType(libnas.MsgTypeRegistrationAccept)
	MsgTypeRegistrationComplete               = MessageType(libnas.MsgTypeRegistrationComplete)
	MsgTypeRegistrationReject                 = MessageType(libnas.MsgTypeRegistrationReject)
	MsgTypeDeregistrationRequestUEOriginating = MessageType(libnas.MsgTypeDeregistrationRequestUEOriginatingDeregistration)
	MsgTypeDeregistrationAcceptUEOriginating  = MessageType(libnas.MsgTypeDeregistrationAcceptUEOriginatingDeregistration)
	MsgTypeDeregistrationRequestUETerminated  = MessageType(libnas.MsgTypeDeregistrationRequestUETerminatedDeregistration)
	MsgTypeDeregistrationAcceptUETerminated   = MessageType(libnas.MsgTypeDeregistrationAcceptUETerminatedDeregistration)
	MsgTypeServiceRequest                     = MessageType(libnas.MsgTypeServiceRequest)
	MsgTypeServiceReject                      = MessageType(libnas.MsgTypeServiceReject)
	MsgTypeServiceAccept                      = MessageType(libnas.MsgTypeServiceAccept)
	MsgTypeConfigurationUpdateCommand         = MessageType(libnas.MsgTypeConfigurationUpdateCommand)
	MsgTypeConfigurationUpdateComplete        = MessageType(libnas.MsgTypeConfigurationUpdateComplete)
	MsgTypeAuthenticationRequest              = MessageType(libnas.MsgTypeAuthenticationRequest)
	MsgTypeAuthenticationResponse             = MessageType(libnas.MsgTypeAuthenticationResponse)
	MsgTypeAuthenticationReject               = MessageType(libnas.MsgTypeAuthenticationReject)
	MsgTypeAuthenticationFailure              = MessageType(libnas.MsgTypeAuthenticationFailure)
	MsgTypeAuthenticationResult               = MessageType(libnas.MsgTypeAuthenticationResult)
	MsgTypeIdentityRequest                    = MessageType(libnas.MsgTypeIdentityRequest)
	MsgTypeIdentityResponse                   = MessageType(libnas.MsgTypeIdentityResponse)
	MsgTypeSecurityModeCommand                = MessageType(libnas.MsgTypeSecurityModeCommand)
	MsgTypeSecurityModeComplete               = MessageType(libnas.MsgTypeSecurityModeComplete)
	MsgTypeSecurityModeReject                 = MessageType(libnas.MsgTypeSecurityModeReject)
	MsgTypeMMStatus                           = MessageType(libnas.MsgTypeStatus5GMM)
	MsgTypeNotification                       = MessageType(libnas.MsgTypeNotification)
	MsgTypeNotificationResponse               = MessageType(libnas.MsgTypeNotificationResponse)
	MsgTypeULNASTransport                     = MessageType(libnas.MsgTypeULNASTransport)
	MsgTypeDLNASTransport                     = MessageType(libnas.MsgTypeDLNASTransport)

	// Release 16 additions, not defined by free5gc/nas
	MsgTypeControlPlaneServiceRequest          MessageType = 0x4f
	MsgTypeSliceSpecificAuthenticationCommand  MessageType = 0x50
	MsgTypeSliceSpecificAuthenticationComplete MessageType = 0x51
	MsgTypeSliceSpecificAuthenticationResult   MessageType = 0x52
)

// 5GSM message types (TS 24.501 9.7 table 9.7.2)
const (
	MsgTypePDUSessionEstablishmentRequest      = MessageType(libnas.MsgTypePDUSessionEstablishmentRequest)
	MsgTypePDUSessionEstablishmentAccept       = MessageType(libnas.MsgTypePDUSessionEstablishmentAccept)
	MsgTypePDUSessionEstablishmentReject       = MessageType(libnas.MsgTypePDUSessionEstablishmentReject)
	MsgTypePDUSessionAuthenticationCommand     = MessageType(libnas.MsgTypePDUSessionAuthenticationCommand)
	MsgTypePDUSessionAuthenticationComplete    = MessageType(libnas.MsgTypePDUSessionAuthenticationComplete)
	MsgTypePDUSessionAuthenticationResult      = MessageType(libnas.MsgTypePDUSessionAuthenticationResult)
	MsgTypePDUSessionModificationRequest       = MessageType(libnas.MsgTypePDUSessionModificationRequest)
	MsgTypePDUSessionModificationReject        = MessageType(libnas.MsgTypePDUSessionModificationReject)
	MsgTypePDUSessionModificationCommand       = MessageType(libnas.MsgTypePDUSessionModificationCommand)
	MsgTypePDUSessionModificationComplete      = MessageType(libnas.MsgTypePDUSessionModificationComplete)
	MsgTypePDUSessionModificationCommandReject = MessageType(libnas.MsgTypePDUSessionModificationCommandReject)
	MsgTypePDUSessionReleaseRequest            = MessageType(libnas.MsgTypePDUSessionReleaseRequest)
	MsgTypePDUSessionReleaseReject             = MessageType(libnas.MsgTypePDUSessionReleaseReject)
	MsgTypePDUSessionReleaseCommand            = MessageType(libnas.MsgTypePDUSessionReleaseCommand)
	MsgTypePDUSessionReleaseComplete           = MessageType(libnas.MsgTypePDUSessionReleaseComplete)
	MsgTypeSMStatus                            = MessageType(libnas.MsgTypeStatus5GSM)
)

var mmMessageTypes = map[MessageType]string{
	MsgTypeRegistrationRequest:                 "RegistrationRequest",
	MsgTypeRegistrationAccept:                  "RegistrationAccept",
	MsgTypeRegistrationComplete:                "RegistrationComplete",
	MsgTypeRegistrationReject:                  "RegistrationReject",
	MsgTypeDeregistrationRequestUEOriginating:  "DeregistrationRequestUEOriginating",
	MsgTypeDeregistrationAcceptUEOriginating:   "DeregistrationAcceptUEOriginating",
	MsgTypeDeregistrationRequestUETerminated:   "DeregistrationRequestUETerminated",
	MsgTypeDeregistrationAcceptUETerminated:    "DeregistrationAcceptUETerminated",
	MsgTypeServiceRequest:                      "ServiceRequest",
	MsgTypeServiceReject:                       "ServiceReject",
	MsgTypeServiceAccept:                       "ServiceAccept",
	MsgTypeControlPlaneServiceRequest:          "ControlPlaneServiceRequest",
	MsgTypeSliceSpecificAuthenticationCommand:  "SliceSpecificAuthenticationCommand",
	MsgTypeSliceSpecificAuthenticationComplete: "SliceSpecificAuthenticationComplete",
	MsgTypeSliceSpecificAuthenticationResult:   "SliceSpecificAuthenticationResult",
	MsgTypeConfigurationUpdateCommand:          "ConfigurationUpdateCommand",
	MsgTypeConfigurationUpdateComplete:         "ConfigurationUpdateComplete",
	MsgTypeAuthenticationRequest:               "AuthenticationRequest",
	MsgTypeAuthenticationResponse:              "AuthenticationResponse",
	MsgTypeAuthenticationReject:                "AuthenticationReject",
	MsgTypeAuthenticationFailure:               "AuthenticationFailure",
	MsgTypeAuthenticationResult:                "AuthenticationResult",
	MsgTypeIdentityRequest:                     "IdentityRequest",
	MsgTypeIdentityResponse:                    "IdentityResponse",
	MsgTypeSecurityModeCommand:                 "SecurityModeCommand",
	MsgTypeSecurityModeComplete:                "SecurityModeComplete",
	MsgTypeSecurityModeReject:                  "SecurityModeReject",
	MsgTypeMMStatus:                            "5GMMStatus",
	MsgTypeNotification:                        "Notification",
	MsgTypeNotificationResponse:                "NotificationResponse",
	MsgTypeULNASTransport:                      "ULNASTransport",
	MsgTypeDLNASTransport:                      "DLNASTransport",
}

var smMessageTypes = map[MessageType]string{
	MsgTypePDUSessionEstablishmentRequest:      "PDUSessionEstablishmentRequest",
	MsgTypePDUSessionEstablishmentAccept:       "PDUSessionEstablishmentAccept",
	MsgTypePDUSessionEstablishmentReject:       "PDUSessionEstablishmentReject",
	MsgTypePDUSessionAuthenticationCommand:     "PDUSessionAuthenticationCommand",
	MsgTypePDUSessionAuthenticationComplete:    "PDUSessionAuthenticationComplete",
	MsgTypePDUSessionAuthenticationResult:      "PDUSessionAuthenticationResult",
	MsgTypePDUSessionModificationRequest:       "PDUSessionModificationRequest",
	MsgTypePDUSessionModificationReject:        "PDUSessionModificationReject",
	MsgTypePDUSessionModificationCommand:       "PDUSessionModificationCommand",
	MsgTypePDUSessionModificationComplete:      "PDUSessionModificationComplete",
	MsgTypePDUSessionModificationCommandReject: "PDUSessionModificationCommandReject",
	MsgTypePDUSessionReleaseRequest:            "PDUSessionReleaseRequest",
	MsgTypePDUSessionReleaseReject:             "PDUSessionReleaseReject",
	MsgTypePDUSessionReleaseCommand:            "PDUSessionReleaseCommand",
	MsgTypePDUSessionReleaseComplete:           "PDUSessionReleaseComplete",
	MsgTypeSMStatus:                            "5GSMStatus",
}

// classifyMessageType resolves b against the table of epd. The two high
// bits select the table, so a 5GSM identifier under a 5GMM discriminator
// is rejected even though it is a valid 5GSM value.
func classifyMessageType(epd ProtocolDiscriminator, b byte) (MessageType, error) {
	var (
		prefix byte
		table  map[MessageType]string
	)
	switch epd {
	case MobilityManagement:
		prefix, table = mmMessageTypePrefix, mmMessageTypes
	case SessionManagement:
		prefix, table = smMessageTypePrefix, smMessageTypes
	default:
		return 0, CauseUnspecifiedProtocolError
	}

	if b&messageTypeMask != prefix {
		return 0, CauseMessageTypeNonExistent
	}
	if _, ok := table[MessageType(b)]; !ok {
		return 0, CauseMessageTypeNonExistent
	}
	return MessageType(b), nil
}

func (m MessageType) String() string {
	if name, ok := mmMessageTypes[m]; ok {
		return name
	}
	if name, ok := smMessageTypes[m]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(0x%02x)", uint8(m))
}
