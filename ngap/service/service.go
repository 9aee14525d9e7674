// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/logger"
	"github.com/omec-project/corekube/ngap"
	"github.com/omec-project/corekube/util"
	"golang.org/x/net/ipv4"
)

const (
	minReadRetryDelay = 5 * time.Millisecond
	maxReadRetryDelay = time.Second
)

// readRetryDelay doubles the pause after each consecutive read failure, up
// to maxReadRetryDelay.
type readRetryDelay struct {
	delay time.Duration
}

func (r *readRetryDelay) next() time.Duration {
	if r.delay == 0 {
		r.delay = minReadRetryDelay
	} else {
		r.delay *= 2
	}
	if r.delay > maxReadRetryDelay {
		r.delay = maxReadRetryDelay
	}
	return r.delay
}

func (r *readRetryDelay) reset() {
	r.delay = 0
}

// Server receives NGAP datagrams on one UDP socket and answers on the
// same socket.
type Server struct {
	amf     *context.AMFContext
	conn    *ipv4.PacketConn
	wg      *sync.WaitGroup
	stopped atomic.Bool
}

// Run binds the NGAP socket and starts the receiver. A bind failure is
// returned to the caller, which treats it as fatal.
func Run(amf *context.AMFContext, wg *sync.WaitGroup) (*Server, error) {
	if amf == nil {
		return nil, errors.New("AMF context is nil")
	}

	udpConn, err := net.ListenPacket("udp", amf.BindAddress())
	if err != nil {
		return nil, fmt.Errorf("listen NGAP on %s: %w", amf.BindAddress(), err)
	}

	conn := ipv4.NewPacketConn(udpConn)
	if err = conn.SetControlMessage(ipv4.FlagDst, true); err != nil {
		logger.NgapLog.Debugf("destination address reporting unavailable: %+v", err)
	}

	server := &Server{amf: amf, conn: conn, wg: wg}
	logger.NgapLog.Infof("NGAP server listening on %s (multithreaded: %t)", udpConn.LocalAddr(), amf.Multithreaded())

	wg.Add(1)
	go server.listenAndServe()

	return server, nil
}

func (s *Server) listenAndServe() {
	defer util.RecoverWithLog(logger.NgapLog)
	defer func() {
		logger.NgapLog.Infoln("NGAP receiver stopped")
		s.wg.Done()
	}()

	var retry readRetryDelay
	data := make([]byte, ngap.MaxDatagramLen)
	for {
		n, cm, src, err := s.conn.ReadFrom(data)
		if err != nil {
			if s.stopped.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			delay := retry.next()
			logger.NgapLog.Errorf("read from UDP connection failed: %+v; retrying in %v", err, delay)
			time.Sleep(delay)
			continue
		}
		retry.reset()
		if cm != nil {
			logger.NgapLog.Debugf("successfully read %d bytes from %s to %s", n, src, cm.Dst)
		} else {
			logger.NgapLog.Debugf("successfully read %d bytes from %s", n, src)
		}

		forwardData := make([]byte, n)
		copy(forwardData, data[:n])

		if !s.amf.Multithreaded() {
			s.handleDatagram(forwardData, src)
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleDatagram(forwardData, src)
		}()
	}
}

// handleDatagram runs one datagram to completion. Failures stay inside
// the datagram: they are logged and nothing is sent.
func (s *Server) handleDatagram(buf []byte, src net.Addr) {
	defer util.RecoverWithLog(logger.NgapLog)

	frames, err := ngap.HandleDatagram(s.amf, buf)
	if err != nil {
		logger.NgapLog.Errorf("drop datagram from %s: %+v", src, err)
		return
	}

	for _, frame := range frames {
		if _, err := s.conn.WriteTo(frame, nil, src); err != nil {
			logger.NgapLog.Errorf("send NGAP response to %s failed: %+v", src, err)
		}
	}
}

// LocalAddr returns the address the server is bound to.
func (s *Server) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

func (s *Server) Stop() {
	logger.NgapLog.Infoln("close NGAP server")
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	if err := s.conn.Close(); err != nil {
		logger.NgapLog.Errorf("stop ngap server error: %+v", err)
	}
}
