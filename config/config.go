// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/bindgen/bindgen"
	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/logging"
	"github.com/ava-labs/bindgen/utils/staging"
)

var (
	errNoTargets    = errors.New("no targets configured or discovered")
	errInvalidAlias = errors.New("invalid alias")
)

type Config struct {
	// Targets explicitly listed in the config file. When empty, targets are
	// discovered in ABIDir.
	Targets []bindgen.Target
	ABIDir  string
	OutDir  string
	Package string
	Aliases map[string]string

	Builder bindgen.Config

	LogLevel            logging.Level
	LogDisplayHighlight logging.Highlight
	LogFile             string

	MetricsFile string
}

// BuildViper binds the parsed flags of [fs] and reads the config file, if
// any.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	configFile := v.GetString(ConfigFileKey)
	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configFile = DefaultConfigFile
		}
	}
	if configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// GetConfig reads the generator configuration out of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		ABIDir:      v.GetString(ABIDirKey),
		OutDir:      v.GetString(OutDirKey),
		Package:     v.GetString(PackageKey),
		LogFile:     v.GetString(LogFileKey),
		MetricsFile: v.GetString(MetricsFileKey),
	}
	aliases, err := parseAliases(v.GetStringSlice(AliasesKey))
	if err != nil {
		return Config{}, err
	}
	config.Aliases = aliases
	if err := v.UnmarshalKey(TargetsKey, &config.Targets); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", TargetsKey, err)
	}

	policy, err := staging.ParsePolicy(v.GetString(StagingPolicyKey))
	if err != nil {
		return Config{}, err
	}
	config.Builder = bindgen.Config{
		StagingDir:    v.GetString(StagingDirKey),
		StagingPolicy: policy,
	}

	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}
	config.LogDisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stdout.Fd())
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// ResolveTargets returns the configured targets, or the targets discovered in
// the ABI directory when none are configured. A target without a package
// gets the configured package, or else the name of its output directory when
// that is a Go identifier.
func (c Config) ResolveTargets(reader filesystem.Reader) ([]bindgen.Target, error) {
	targets := append([]bindgen.Target(nil), c.Targets...)
	if len(targets) == 0 {
		discovered, err := bindgen.Discover(reader, c.ABIDir, c.OutDir)
		if err != nil {
			return nil, err
		}
		targets = discovered
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w in %q", errNoTargets, c.ABIDir)
	}
	for i := range targets {
		if targets[i].Package == "" {
			targets[i].Package = c.packageFor(targets[i].Out)
		}
	}
	return targets, nil
}

func (c Config) packageFor(out string) string {
	if c.Package != "" {
		return c.Package
	}
	if dir := filepath.Base(filepath.Dir(filepath.Clean(out))); token.IsIdentifier(dir) {
		return dir
	}
	return ""
}

// parseAliases parses "original=alias" pairs. Viper lowercases map keys, so
// aliases are configured as a list to keep ABI names intact.
func parseAliases(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	aliases := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		original, alias, ok := strings.Cut(pair, "=")
		original = strings.TrimSpace(original)
		alias = strings.TrimSpace(alias)
		if !ok || original == "" || alias == "" {
			return nil, fmt.Errorf("%w: %q, expected original=alias", errInvalidAlias, pair)
		}
		aliases[original] = alias
	}
	return aliases, nil
}
