// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"errors"
	"fmt"

	"github.com/omec-project/corekube/context"
	"github.com/omec-project/corekube/factory"
	"github.com/omec-project/corekube/logger"
)

const defaultNgapUdpPort uint16 = 9977

// InitAMFContext validates the loaded configuration and freezes it into the
// AMF context shared by all NGAP workers.
func InitAMFContext(cfg *factory.Configuration) (*context.AMFContext, error) {
	if cfg == nil {
		return nil, errors.New("no AMF configuration found")
	}

	bind := cfg.BindAddress
	if bind.Addr == "" {
		return nil, errors.New("NGAP bind address is empty")
	}
	if bind.Port == 0 {
		logger.CtxLog.Warnf("NGAP bind port not set, using %d", defaultNgapUdpPort)
		bind.Port = defaultNgapUdpPort
	}

	for _, sst := range cfg.SstList {
		if sst == 0 {
			logger.CtxLog.Warnln("SST 0 is configured, peers may reject it")
		}
	}

	amfCtx, err := context.NewAMFContext(context.AMFContextOpts{
		Name:                cfg.AmfName,
		Guami:               cfg.Guami,
		RelativeAMFCapacity: cfg.RelativeAMFCapacity,
		SstList:             cfg.SstList,
		Bind:                bind,
		Multithreaded:       cfg.Multithreaded,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid AMF configuration: %w", err)
	}

	// a GUAMI that cannot be encoded fails at startup
	if _, err = GuamiToNgap(amfCtx.Guami()); err != nil {
		return nil, fmt.Errorf("invalid served GUAMI: %w", err)
	}

	guami := amfCtx.Guami()
	logger.CtxLog.Infof("AMF[%s] PLMN[%03d-%02d] region[%d] set[%d] pointer[%d] capacity[%d] SST%v",
		amfCtx.Name(), guami.PlmnId.Mcc, guami.PlmnId.Mnc, guami.RegionId, guami.SetId,
		guami.Pointer, amfCtx.RelativeAMFCapacity(), amfCtx.SstList())

	return amfCtx, nil
}
