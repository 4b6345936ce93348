// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ava-labs/bindgen/utils/logging"
	"github.com/ava-labs/bindgen/utils/staging"
)

const (
	// DefaultConfigFile is read when present and no config file was given.
	DefaultConfigFile = "bindgen.yaml"

	defaultABIDir = "abi"
	defaultOutDir = "bindings"
)

// AddFlags adds the flags of the generator to [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", fmt.Sprintf("Config file (yaml, json or toml). Defaults to %s when it exists", DefaultConfigFile))

	// Targets
	fs.String(ABIDirKey, defaultABIDir, "Directory searched for *.abi.json documents when no targets are configured")
	fs.String(OutDirKey, defaultOutDir, "Directory discovered bindings are written to")
	fs.String(PackageKey, "", "Go package of generated bindings. Defaults to the name of each binding's output directory")
	fs.StringSlice(AliasesKey, nil, "Renames of ABI methods and events, as original=alias pairs")

	// Staging
	fs.String(StagingDirKey, "", "Directory holding sanitized documents during generation. Defaults to the system temporary directory")
	fs.String(StagingPolicyKey, string(staging.Remove), fmt.Sprintf("What to do with sanitized documents after use: %s or %s", staging.Remove, staging.Keep))

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(LogFileKey, "", "If non-empty, also write JSON logs to this size-rotated file")

	// Metrics
	fs.String(MetricsFileKey, "", "If non-empty, write the metrics of the run to this file in the prometheus text format")
}

// BuildFlagSet returns a new flag set holding every flag of the generator.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bindgen", pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}
