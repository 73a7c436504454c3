package main

import (
	"github.com/Invicton-Labs/go-numeric/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "numcap"

// config is read from NUMCAP_* environment variables.
type config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

func loadConfig() (config, stackerr.Error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, stackerr.Wrap(err)
	}
	return cfg, nil
}

func (c config) logInput(verbose bool) (log.NewInput, stackerr.Error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return log.NewInput{}, stackerr.Wrap(err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	return log.NewInput{
		Name:          "numcap",
		Level:         level,
		IsDevelopment: c.Development,
	}, nil
}
