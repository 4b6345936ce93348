// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	ABIDirKey              = "abi-dir"
	OutDirKey              = "out-dir"
	PackageKey             = "package"
	AliasesKey             = "aliases"
	TargetsKey             = "targets"
	StagingDirKey          = "staging-dir"
	StagingPolicyKey       = "staging-policy"
	LogLevelKey            = "log-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogFileKey             = "log-file"
	MetricsFileKey         = "metrics-file"
)
