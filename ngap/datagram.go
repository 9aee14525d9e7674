// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package ngap

import (
	"errors"
	"fmt"

	"github.com/omec-project/corekube/context"
)

const (
	// FrontendIDLen is the length of the connection id every datagram
	// starts with. It stands in for an SCTP association and is echoed in
	// front of every response.
	FrontendIDLen = 4
	// MaxDatagramLen is the receive buffer size of the transport.
	MaxDatagramLen = 1024
)

var ErrShortDatagram = errors.New("datagram shorter than frontend id")

// HandleDatagram splits the frontend id off buf, dispatches the NGAP PDU and
// frames each response as frontend_id || stream || pdu.
func HandleDatagram(amf *context.AMFContext, buf []byte) ([][]byte, error) {
	if len(buf) < FrontendIDLen {
		return nil, fmt.Errorf("%d bytes: %w", len(buf), ErrShortDatagram)
	}
	frontendID := buf[:FrontendIDLen]

	responses, err := Dispatch(amf, buf[FrontendIDLen:])
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(responses))
	for _, resp := range responses {
		frame := make([]byte, 0, FrontendIDLen+1+len(resp.Buf))
		frame = append(frame, frontendID...)
		frame = append(frame, resp.Stream)
		frame = append(frame, resp.Buf...)
		out = append(out, frame)
	}
	return out, nil
}
