// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"fmt"
	"os"

	"github.com/omec-project/corekube/logger"
	"gopkg.in/yaml.v2"
)

var AmfConfig = Config{
	Configuration: DefaultConfiguration(),
}

// InitConfigFactory loads f on top of the compiled-in defaults.
func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return err
	}

	cfg := Config{Configuration: DefaultConfiguration()}
	if err = yaml.Unmarshal(content, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", f, err)
	}
	if cfg.Configuration == nil {
		cfg.Configuration = DefaultConfiguration()
	}
	AmfConfig = cfg

	return nil
}

func CheckConfigVersion() error {
	currentVersion := AmfConfig.getVersion()

	if currentVersion != AMF_EXPECTED_CONFIG_VERSION {
		return fmt.Errorf("config version is [%s], but expected is [%s]",
			currentVersion, AMF_EXPECTED_CONFIG_VERSION)
	}

	logger.CfgLog.Infof("config version [%s]", currentVersion)

	return nil
}
