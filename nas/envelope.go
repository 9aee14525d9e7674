// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

// Package nas classifies NAS messages carried in NGAP by protocol
// discriminator, security header and message type, unwrapping one level of
// security protection when asked to.
package nas

import (
	"bytes"
	"errors"
	"fmt"

	libnas "github.com/free5gc/nas"
	"github.com/omec-project/corekube/logger"
	"github.com/omec-project/corekube/util"
)

const (
	minMessageLen = 3
	macLen        = 4
	// EPD, security header type, MAC and sequence number (TS 24.501 9.1.1)
	securityProtectedHeaderLen = 2 + macLen + 1
)

var ErrNotUnwrapped = errors.New("security protected NAS message was not unwrapped")

type ParseOptions struct {
	// Inner requests classification of the message carried inside a
	// security protected frame.
	Inner bool
	// NullCipher declares that the security context uses the null ciphering
	// algorithm, so a ciphered inner message is readable as is.
	NullCipher bool
}

// Envelope is the classification of one NAS message. It is built once per
// received payload and never modified afterwards.
type Envelope struct {
	ProtocolDiscriminator ProtocolDiscriminator
	SecurityHeader        SecurityHeaderType
	// MessageType is set for plain messages only.
	MessageType MessageType

	// Set for security protected frames. The MAC is carried, not verified.
	MAC            [macLen]byte
	SequenceNumber uint8

	// Payload is the whole plain message, or the inner message of a
	// security protected frame.
	Payload []byte
	// Inner is the classified inner message when it was unwrapped.
	Inner *Envelope
}

// Parse classifies buf. Classification failures are returned as a Cause.
func Parse(buf []byte, opts ParseOptions) (*Envelope, error) {
	return parse(buf, opts, false)
}

func parse(buf []byte, opts ParseOptions, unwrapped bool) (*Envelope, error) {
	if len(buf) < minMessageLen {
		logger.NasLog.Debugf("NAS message too short: %d bytes", len(buf))
		return nil, CauseUnspecifiedProtocolError
	}

	epd := ProtocolDiscriminator(buf[0])
	if epd != MobilityManagement && epd != SessionManagement {
		logger.NasLog.Debugf("unknown extended protocol discriminator 0x%02x", buf[0])
		return nil, CauseUnspecifiedProtocolError
	}

	envelope := &Envelope{
		ProtocolDiscriminator: epd,
		SecurityHeader:        parseSecurityHeaderType(buf[1]),
	}

	if epd == MobilityManagement && envelope.SecurityHeader.Protected() {
		if unwrapped {
			logger.NasLog.Warnln("security protected NAS message nested inside another one")
			return nil, CauseUnspecifiedProtocolError
		}
		logger.NasLog.Debugf("security protected NAS message, header %s", envelope.SecurityHeader)

		if err := envelope.resolveSecurityProtectedFrame(buf); err != nil {
			return nil, err
		}

		if opts.Inner && (envelope.SecurityHeader == IntegrityProtected ||
			envelope.SecurityHeader == IntegrityProtectedWithNewSecurityContext ||
			opts.NullCipher) {
			inner, err := parse(envelope.Payload, opts, true)
			if err != nil {
				return nil, err
			}
			envelope.Inner = inner
		}
		return envelope, nil
	}

	messageType, err := classifyMessageType(epd, buf[2])
	if err != nil {
		logger.NasLog.Debugf("unknown %s message type 0x%02x", epd, buf[2])
		return nil, err
	}
	envelope.MessageType = messageType

	// the 5GSM header carries one more mandatory octet
	if epd == SessionManagement && len(buf) < minMessageLen+1 {
		return nil, CauseInvalidMandatoryInfo
	}

	envelope.Payload = bytes.Clone(buf)
	logger.NasLog.Debugf("%s message %s", epd, messageType)
	return envelope, nil
}

// resolveSecurityProtectedFrame strips the MAC and sequence number from a
// security protected 5GMM frame, leaving the inner message in Payload.
func (e *Envelope) resolveSecurityProtectedFrame(buf []byte) error {
	if len(buf) <= securityProtectedHeaderLen {
		logger.NasLog.Debugf("security protected NAS message carries no inner message (%d bytes)", len(buf))
		return CauseInvalidMandatoryInfo
	}
	copy(e.MAC[:], buf[2:2+macLen])
	e.SequenceNumber = buf[2+macLen]
	e.Payload = bytes.Clone(buf[securityProtectedHeaderLen:])
	return nil
}

// Plain returns the innermost classified plain message, or nil when the
// envelope is a security protected frame that was not unwrapped.
func (e *Envelope) Plain() *Envelope {
	if e.Inner != nil {
		return e.Inner
	}
	if e.ProtocolDiscriminator == MobilityManagement && e.SecurityHeader.Protected() {
		return nil
	}
	return e
}

// Decode fully decodes the plain message of e.
func (e *Envelope) Decode() (msg *libnas.Message, err error) {
	defer util.RecoverToError(logger.NasLog, &err)

	plain := e.Plain()
	if plain == nil {
		return nil, ErrNotUnwrapped
	}

	payload := bytes.Clone(plain.Payload)
	msg = new(libnas.Message)
	if err = msg.PlainNasDecode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s message %s: %w", plain.ProtocolDiscriminator, plain.MessageType, err)
	}
	return msg, nil
}
