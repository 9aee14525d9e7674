// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import "github.com/omec-project/ngap/ngapType"

// Stream numbers emulating SCTP stream multiplexing over the datagram link.
// Stream 0 carries non-UE-associated signalling (TS 38.412 7).
const (
	NonUEAssociatedStream uint8 = 0
)

// Response is an NGAP PDU produced by a handler together with the stream
// it must be sent on.
type Response struct {
	Stream uint8
	PDU    *ngapType.NGAPPDU
}

// EncodedResponse is the APER encoding of a Response.
type EncodedResponse struct {
	Stream uint8
	Buf    []byte
}
