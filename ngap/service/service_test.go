// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/ngap/message"
	"github.com/omec-project/corekube/ngap/ngaptest"
	libngap "github.com/omec-project/ngap"
	"github.com/omec-project/ngap/ngapType"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, multithreaded bool) (*Server, *sync.WaitGroup) {
	t.Helper()
	amf, err := context.NewAMFContext(context.AMFContextOpts{
		Name: "CoreKubeRS_5G_Worker",
		Guami: context.Guami{
			PlmnId:   context.PlmnId{Mcc: 208, Mnc: 93},
			RegionId: 2,
			SetId:    1,
		},
		RelativeAMFCapacity: 255,
		SstList:             []uint8{1},
		Bind:                context.BindAddress{Addr: "127.0.0.1"},
		Multithreaded:       multithreaded,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	server, err := Run(amf, &wg)
	require.NoError(t, err)
	t.Cleanup(func() {
		server.Stop()
		wg.Wait()
	})
	return server, &wg
}

func dial(t *testing.T, server *Server) *net.UDPConn {
	t.Helper()
	conn, err := net.DialUDP("udp", nil, server.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServerAnswersNGSetup(t *testing.T) {
	for _, multithreaded := range []bool{false, true} {
		server, _ := startServer(t, multithreaded)
		conn := dial(t, server)

		frontendID := []byte{0x00, 0x00, 0x00, 0x07}

		// no frontend id, dropped without a reply
		_, err := conn.Write([]byte{0x01, 0x02})
		require.NoError(t, err)

		request, err := ngaptest.EncodeNGSetupRequest(ngaptest.NGSetupRequestOpts{Name: "Nervion"})
		require.NoError(t, err)
		_, err = conn.Write(append(append([]byte{}, frontendID...), request...))
		require.NoError(t, err)

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		reply := make([]byte, 1024)
		n, err := conn.Read(reply)
		require.NoError(t, err)
		reply = reply[:n]

		require.Greater(t, len(reply), len(frontendID)+1)
		assert.Equal(t, frontendID, reply[:4])
		assert.Equal(t, message.NonUEAssociatedStream, reply[4])

		pdu, err := libngap.Decoder(reply[5:])
		require.NoError(t, err)
		assert.Equal(t, ngapType.NGAPPDUPresentSuccessfulOutcome, pdu.Present)
		assert.Equal(t, int64(ngapType.ProcedureCodeNGSetup), pdu.SuccessfulOutcome.ProcedureCode.Value)
	}
}

func TestServerIgnoresMalformedPDU(t *testing.T) {
	server, _ := startServer(t, true)
	conn := dial(t, server)

	_, err := conn.Write([]byte{0x00, 0x00, 0x00, 0x01, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	_, err = conn.Write(append([]byte{0x00, 0x00, 0x00, 0x02}, ngaptest.NGSetupRequestNervion...))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, err = conn.Read(make([]byte, 1024))
	require.Error(t, err)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func TestServerStop(t *testing.T) {
	server, wg := startServer(t, false)

	server.Stop()
	server.Stop()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("receiver did not stop")
	}
}

func TestRunNilContext(t *testing.T) {
	var wg sync.WaitGroup
	_, err := Run(nil, &wg)
	require.Error(t, err)
}

func TestReadRetryDelay(t *testing.T) {
	var retry readRetryDelay

	assert.Equal(t, minReadRetryDelay, retry.next())
	assert.Equal(t, 2*minReadRetryDelay, retry.next())
	assert.Equal(t, 4*minReadRetryDelay, retry.next())

	for i := 0; i < 20; i++ {
		retry.next()
	}
	assert.Equal(t, maxReadRetryDelay, retry.next())

	retry.reset()
	assert.Equal(t, minReadRetryDelay, retry.next())
}
