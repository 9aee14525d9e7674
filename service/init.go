// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	aperLogger "github.com/omec-project/aper/logger"
	"github.com/omec-project/corekube/factory"
	"github.com/omec-project/corekube/logger"
	ngapService "github.com/omec-project/corekube/ngap/service"
	"github.com/omec-project/corekube/util"
	ngapLogger "github.com/omec-project/ngap/logger"
	utilLogger "github.com/omec-project/util/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AMF main struct
type AMF struct{}

// Config holds configuration file path
type Config struct {
	cfg string
}

var config Config

var amfCLi = []cli.Flag{
	cli.StringFlag{
		Name:  "cfg",
		Usage: "amf config file, compiled-in defaults are used when omitted",
	},
}

func (*AMF) GetCliCmd() (flags []cli.Flag) {
	return amfCLi
}

// Initialize loads config and sets log levels
func (amf *AMF) Initialize(c *cli.Context) error {
	config = Config{cfg: c.String("cfg")}
	if config.cfg == "" {
		logger.CfgLog.Infoln("no config file given, using compiled-in defaults")
		return nil
	}

	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.CfgLog.Errorln(err)
		return err
	}
	if err := factory.InitConfigFactory(absPath); err != nil {
		return err
	}
	if err := factory.CheckConfigVersion(); err != nil {
		return err
	}
	amf.setLogLevel()
	return nil
}

// setLogLevel configures log levels for all modules
func (amf *AMF) setLogLevel() {
	cfgLogger := factory.AmfConfig.Logger
	if cfgLogger == nil {
		logger.InitLog.Warnln("AMF config without log level setting")
		return
	}
	setModuleLogLevel(cfgLogger.AMF, logger.InitLog, logger.SetLogLevel, "AMF")
	setModuleLogLevel(cfgLogger.NGAP, ngapLogger.NgapLog, ngapLogger.SetLogLevel, "NGAP")
	setModuleLogLevel(cfgLogger.Aper, aperLogger.AperLog, aperLogger.SetLogLevel, "Aper")
	setModuleLogLevel(cfgLogger.Util, utilLogger.UtilLog, utilLogger.SetLogLevel, "Util")
}

// setModuleLogLevel is a helper to reduce repetition in log level setup
func setModuleLogLevel(moduleCfg *utilLogger.LogSetting, logObj *zap.SugaredLogger, setLevel func(zapcore.Level), moduleName string) {
	if moduleCfg == nil || moduleCfg.DebugLevel == "" {
		logObj.Warnf("%s Log level not set. Default set to [info] level", moduleName)
		setLevel(zap.InfoLevel)
		return
	}
	level, err := zapcore.ParseLevel(moduleCfg.DebugLevel)
	if err != nil {
		logObj.Warnf("%s Log level [%s] is invalid, set to [info] level", moduleName, moduleCfg.DebugLevel)
		setLevel(zap.InfoLevel)
		return
	}
	logObj.Infof("%s Log level is set to [%s] level", moduleName, level)
	setLevel(level)
}

// Start builds the AMF context, serves NGAP until SIGINT or SIGTERM and
// returns once every worker has finished.
func (amf *AMF) Start() error {
	logger.InitLog.Infoln("server started")

	amfCtx, err := util.InitAMFContext(factory.AmfConfig.Configuration)
	if err != nil {
		logger.InitLog.Errorf("initializing context failed: %+v", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	server, err := ngapService.Run(amfCtx, &wg)
	if err != nil {
		logger.InitLog.Errorf("start NGAP service failed: %+v", err)
		return fmt.Errorf("start NGAP service: %w", err)
	}
	logger.InitLog.Infoln("NGAP service running")

	wg.Add(1)
	go amf.ListenShutdownEvent(ctx, server, &wg)

	logger.InitLog.Infof("AMF[%s] running", amfCtx.Name())

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChannel
	logger.InitLog.Infof("received %s, shutting down", sig)
	cancel()
	wg.Wait()
	logger.InitLog.Infoln("AMF stopped")
	return nil
}

// ListenShutdownEvent waits for shutdown and stops services
func (amf *AMF) ListenShutdownEvent(ctx context.Context, server *ngapService.Server, wg *sync.WaitGroup) {
	defer util.RecoverWithLog(logger.InitLog)
	defer wg.Done()

	<-ctx.Done()
	amf.stopServiceConn(server)
}

// stopServiceConn stops all running services
func (amf *AMF) stopServiceConn(server *ngapService.Server) {
	logger.InitLog.Infoln("stopping service created by AMF")
	server.Stop()
}

