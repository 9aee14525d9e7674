// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var (
	ErrInvalidAMFName  = errors.New("invalid AMF name")
	ErrInvalidGuami    = errors.New("invalid GUAMI")
	ErrInvalidSlice    = errors.New("invalid slice support list")
	ErrInvalidBindAddr = errors.New("invalid bind address")
)

// AMFContext is the identity and transport settings of this AMF. It is
// built once at startup and only read afterwards, so a single pointer is
// shared by every datagram worker without locking.
type AMFContext struct {
	name                string
	guami               Guami
	relativeAMFCapacity uint8
	sstList             []uint8
	bind                BindAddress
	multithreaded       bool
}

// AMFContextOpts carries the raw values NewAMFContext validates.
type AMFContextOpts struct {
	Name                string
	Guami               Guami
	RelativeAMFCapacity uint8
	SstList             []uint8
	Bind                BindAddress
	Multithreaded       bool
}

func NewAMFContext(opts AMFContextOpts) (*AMFContext, error) {
	if opts.Name == "" || len(opts.Name) > MaxLengthOfAMFName {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidAMFName, len(opts.Name))
	}
	if err := opts.Guami.validate(); err != nil {
		return nil, err
	}
	if len(opts.SstList) == 0 || len(opts.SstList) > MaxNumOfSliceItems {
		return nil, fmt.Errorf("%w: %d SST entries", ErrInvalidSlice, len(opts.SstList))
	}
	if net.ParseIP(opts.Bind.Addr) == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBindAddr, opts.Bind.Addr)
	}

	sstList := make([]uint8, len(opts.SstList))
	copy(sstList, opts.SstList)

	return &AMFContext{
		name:                opts.Name,
		guami:               opts.Guami,
		relativeAMFCapacity: opts.RelativeAMFCapacity,
		sstList:             sstList,
		bind:                opts.Bind,
		multithreaded:       opts.Multithreaded,
	}, nil
}

func (g Guami) validate() error {
	if g.PlmnId.Mcc > MaxValueOfMcc {
		return fmt.Errorf("%w: MCC %d out of range", ErrInvalidGuami, g.PlmnId.Mcc)
	}
	if g.PlmnId.Mnc > MaxValueOfMnc {
		return fmt.Errorf("%w: MNC %d out of range", ErrInvalidGuami, g.PlmnId.Mnc)
	}
	if g.SetId > MaxValueOfSetId {
		return fmt.Errorf("%w: AMF set ID %d exceeds %d bits", ErrInvalidGuami, g.SetId, AMFSetIdBitLength)
	}
	if g.Pointer > MaxValueOfPointer {
		return fmt.Errorf("%w: AMF pointer %d exceeds %d bits", ErrInvalidGuami, g.Pointer, AMFPointerBitLength)
	}
	return nil
}

func (c *AMFContext) Name() string { return c.name }

func (c *AMFContext) Guami() Guami { return c.guami }

func (c *AMFContext) RelativeAMFCapacity() uint8 { return c.relativeAMFCapacity }

// SstList returns a copy of the supported slice/service types.
func (c *AMFContext) SstList() []uint8 {
	sstList := make([]uint8, len(c.sstList))
	copy(sstList, c.sstList)
	return sstList
}

func (c *AMFContext) Multithreaded() bool { return c.multithreaded }

// BindAddress returns the UDP listen address in host:port form.
func (c *AMFContext) BindAddress() string {
	return net.JoinHostPort(c.bind.Addr, strconv.Itoa(int(c.bind.Port)))
}
