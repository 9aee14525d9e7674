// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	AppLog      *zap.SugaredLogger
	InitLog     *zap.SugaredLogger
	CfgLog      *zap.SugaredLogger
	CtxLog      *zap.SugaredLogger
	NgapLog     *zap.SugaredLogger
	NasLog      *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
)

const component = "AMF"

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

	var err error
	if log, err = buildConsoleLogger(atomicLevel); err != nil {
		panic(err)
	}
	setCategories(log)
}

// buildConsoleLogger writes ISO8601 timestamped console lines to stdout,
// without stack traces.
func buildConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.StacktraceKey = ""

	return zap.Config{
		Level:            level,
		Encoding:         "console",
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
}

func setCategories(base *zap.Logger) {
	category := func(name string) *zap.SugaredLogger {
		return base.Sugar().With("component", component, "category", name)
	}
	AppLog = category("App")
	InitLog = category("Init")
	CfgLog = category("CFG")
	CtxLog = category("Context")
	NgapLog = category("NGAP")
	NasLog = category("NAS")
}

// GetLogger returns the base zap.Logger
func GetLogger() *zap.Logger {
	return log
}

// SetLogLevel sets the log level (panic|fatal|error|warn|info|debug)
func SetLogLevel(level zapcore.Level) {
	InitLog.Infoln("set log level:", level)
	atomicLevel.SetLevel(level)
}

// ReplaceCore rebuilds every category logger on top of core and returns a
// function restoring the previous loggers. Tests use it to observe output.
func ReplaceCore(core zapcore.Core) (restore func()) {
	prev := log
	log = zap.New(core)
	setCategories(log)
	return func() {
		log = prev
		setCategories(prev)
	}
}
