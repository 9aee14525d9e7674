// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/omec-project/corekube/logger"
	"github.com/omec-project/corekube/service"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var AMF = &service.AMF{}

var appLog *zap.SugaredLogger

func init() {
	appLog = logger.AppLog
}

func main() {
	app := cli.NewApp()
	app.Name = "corekube"
	appLog.Infoln(app.Name)
	app.Usage = "-cfg amf configuration file"
	app.Action = action
	app.Flags = AMF.GetCliCmd()
	if err := app.Run(os.Args); err != nil {
		appLog.Errorf("AMF run Error: %v", err)
		os.Exit(1)
	}
}

func action(c *cli.Context) error {
	if err := AMF.Initialize(c); err != nil {
		logger.CfgLog.Errorf("%+v", err)
		return fmt.Errorf("failed to initialize")
	}

	return AMF.Start()
}
