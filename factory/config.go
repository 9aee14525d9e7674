// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"github.com/omec-project/corekube/context"
	"github.com/omec-project/util/logger"
)

const (
	AMF_EXPECTED_CONFIG_VERSION = "1.0.0"
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *logger.Logger `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Configuration struct {
	AmfName             string              `yaml:"amfName"`
	Guami               context.Guami       `yaml:"servedGuami"`
	RelativeAMFCapacity uint8               `yaml:"relativeAmfCapacity"`
	SstList             []uint8             `yaml:"sstList"`
	BindAddress         context.BindAddress `yaml:"bindAddress"`
	Multithreaded       bool                `yaml:"multithreaded"`
}

// DefaultConfiguration returns the compiled-in settings used when no
// configuration file is given. Fields missing from a file keep these values.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		AmfName: "CoreKubeRS_5G_Worker",
		Guami: context.Guami{
			PlmnId:   context.PlmnId{Mcc: 208, Mnc: 93},
			RegionId: 2,
			SetId:    1,
			Pointer:  0,
		},
		RelativeAMFCapacity: 255,
		SstList:             []uint8{1},
		BindAddress:         context.BindAddress{Addr: "0.0.0.0", Port: 9977},
		Multithreaded:       true,
	}
}

func (c *Config) getVersion() string {
	if c.Info != nil && c.Info.Version != "" {
		return c.Info.Version
	}
	return ""
}
