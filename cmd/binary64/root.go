// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/binary64"
	"github.com/db47h/binary64/context"
)

const (
	// envPrefix is the viper env prefix: BINARY64_PRECISION, BINARY64_LOG_LEVEL...
	envPrefix = "BINARY64"

	defaultConfigPath = "binary64.yaml"

	flagConfig    = "config"
	flagOutput    = "output"
	flagPrecision = "precision"
	flagRounding  = "rounding"
	flagLogLevel  = "log-level"

	outputText = "text"
	outputJSON = "json"
)

// config holds the settings shared by all commands. Values come from, in
// order of precedence: flags, environment variables, the config file and
// defaults.
type config struct {
	Output    string `mapstructure:"output"`
	Precision uint   `mapstructure:"precision"`
	Rounding  string `mapstructure:"rounding"`
	LogLevel  string `mapstructure:"log_level"`
}

// app is the state shared by the commands of one invocation. It is set up in
// the root command's PersistentPreRunE.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config
	log        zerolog.Logger
	engine     *binary64.Engine
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	a := &app{v: viper.New(), log: logger}

	rootCmd := &cobra.Command{
		Use:   "binary64",
		Short: "Inspect IEEE-754 double precision values",
		Long: `Inspect IEEE-754 double precision values.

binary64 converts decimal numbers to the sign, exponent and significand fields
of the double nearest to them, expands bit patterns into their exact decimal
value and measures the conversion error as an exact fraction.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, defaultConfigPath, "YAML config file")
	pf.StringP(flagOutput, "o", outputText, "output format: text or json")
	pf.Uint(flagPrecision, context.DefaultPrec, "working precision of exact expansions, in decimal digits")
	pf.String(flagRounding, context.ToNearestEven.String(), "rounding mode of exact expansions")
	pf.String(flagLogLevel, zerolog.InfoLevel.String(), "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		encodeCmd(a),
		decodeCmd(a),
		exactCmd(a),
		ratCmd(a),
		analyzeCmd(a),
		fractionCmd(a),
	)
	return rootCmd
}

// setup reads the configuration and builds the logger and engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.setupViper(cmd); err != nil {
		return err
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}

	switch a.cfg.Output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", a.cfg.Output)
	}

	lvl, err := zerolog.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log = a.log.Level(lvl)

	mode, err := context.ParseRoundingMode(a.cfg.Rounding)
	if err != nil {
		return fmt.Errorf("%w: %v", binary64.ErrInvalidRounding, err)
	}
	a.engine, err = binary64.New(a.cfg.Precision,
		binary64.WithRounding(mode),
		binary64.WithLogger(a.log))
	if err != nil {
		return err
	}

	a.log.Debug().
		Str("config", a.v.ConfigFileUsed()).
		Interface("settings", a.cfg).
		Msg("configured")
	return nil
}

// setupViper binds flags, environment variables and the config file.
func (a *app) setupViper(cmd *cobra.Command) error {
	if err := a.readConfig(cmd.Flags().Changed(flagConfig)); err != nil {
		return err
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	for key, name := range map[string]string{
		"output":    flagOutput,
		"precision": flagPrecision,
		"rounding":  flagRounding,
		"log_level": flagLogLevel,
	} {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// readConfig loads the config file. A missing file is only an error if its
// path was given explicitly.
func (a *app) readConfig(explicit bool) error {
	a.v.SetConfigFile(a.configPath)
	a.v.SetConfigType("yaml")

	err := a.v.ReadInConfig()
	switch {
	case err == nil:
		return nil
	case !explicit && (errors.As(err, &viper.ConfigFileNotFoundError{}) || errors.Is(err, fs.ErrNotExist)):
		return nil
	}
	return fmt.Errorf("reading config %s: %w", a.configPath, err)
}
