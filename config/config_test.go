// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bindgen/bindgen"
	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/logging"
	"github.com/ava-labs/bindgen/utils/perms"
	"github.com/ava-labs/bindgen/utils/staging"
)

func parse(t *testing.T, args ...string) (Config, error) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse(args))
	v, err := BuildViper(fs)
	require.NoError(t, err)
	return GetConfig(v)
}

func TestDefaults(t *testing.T) {
	require := require.New(t)

	config, err := parse(t)
	require.NoError(err)
	require.Empty(config.Targets)
	require.Equal(defaultABIDir, config.ABIDir)
	require.Equal(defaultOutDir, config.OutDir)
	require.Empty(config.Package)
	require.Nil(config.Aliases)
	require.Equal(bindgen.Config{StagingPolicy: staging.Remove}, config.Builder)
	require.Equal(logging.Info, config.LogLevel)
	require.Empty(config.LogFile)
	require.Empty(config.MetricsFile)
}

func TestFlags(t *testing.T) {
	require := require.New(t)

	config, err := parse(t,
		"--abi-dir=contracts/abi",
		"--out-dir=.",
		"--staging-dir=/var/tmp/bindgen",
		"--staging-policy=keep",
		"--log-level=debug",
		"--log-display-highlight=colors",
		"--aliases=transfer=send,balanceOf=getBalance",
		"--log-file=logs/bindgen.log",
		"--metrics-file=bindgen.prom",
	)
	require.NoError(err)
	require.Equal("contracts/abi", config.ABIDir)
	require.Equal(".", config.OutDir)
	require.Empty(config.Package)
	require.Equal(map[string]string{"transfer": "send", "balanceOf": "getBalance"}, config.Aliases)
	require.Equal(bindgen.Config{StagingDir: "/var/tmp/bindgen", StagingPolicy: staging.Keep}, config.Builder)
	require.Equal(logging.Debug, config.LogLevel)
	require.Equal(logging.Colors, config.LogDisplayHighlight)
	require.Equal("logs/bindgen.log", config.LogFile)
	require.Equal("bindgen.prom", config.MetricsFile)
}

func TestConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := filepath.Join(t.TempDir(), "bindgen.yaml")
	require.NoError(os.WriteFile(configFile, []byte(`
package: contracts
staging-policy: keep
aliases:
  - balanceOf=getBalance
targets:
  - name: Contract
    abi: abi/contract.abi.json
    out: src/abi/contract.go
  - name: Token
    abi: abi/token.abi.json
    out: src/token/token.go
    package: token
`), perms.ReadWrite))

	config, err := parse(t, "--config-file="+configFile, "--log-level=warn")
	require.NoError(err)
	require.Equal("contracts", config.Package)
	require.Equal(staging.Keep, config.Builder.StagingPolicy)
	require.Equal(logging.Warn, config.LogLevel)
	require.Equal(map[string]string{"balanceOf": "getBalance"}, config.Aliases)
	require.Equal([]bindgen.Target{
		{Name: "Contract", ABI: "abi/contract.abi.json", Out: "src/abi/contract.go"},
		{Name: "Token", ABI: "abi/token.abi.json", Out: "src/token/token.go", Package: "token"},
	}, config.Targets)

	targets, err := config.ResolveTargets(filesystem.NewReader())
	require.NoError(err)
	require.Equal([]bindgen.Target{
		{Name: "Contract", ABI: "abi/contract.abi.json", Out: "src/abi/contract.go", Package: "contracts"},
		{Name: "Token", ABI: "abi/token.abi.json", Out: "src/token/token.go", Package: "token"},
	}, targets)
}

func TestResolveTargetsPackageFromOutput(t *testing.T) {
	require := require.New(t)

	config := Config{
		OutDir: "bindings",
		Targets: []bindgen.Target{
			{Name: "Contract", ABI: "abi/contract.abi.json", Out: "src/abi/contract.go"},
			{Name: "Token", ABI: "abi/token.abi.json", Out: "token.go"},
			{Name: "Vault", ABI: "abi/vault.abi.json", Out: "src/vault-v2/vault.go"},
			{Name: "Pool", ABI: "abi/pool.abi.json", Out: "src/abi/pool.go", Package: "pool"},
		},
	}
	targets, err := config.ResolveTargets(filesystem.NewReader())
	require.NoError(err)
	require.Equal("abi", targets[0].Package)
	require.Empty(targets[1].Package)
	require.Empty(targets[2].Package)
	require.Equal("pool", targets[3].Package)

	// The configured targets are left as written.
	require.Empty(config.Targets[0].Package)
}

func TestMissingConfigFile(t *testing.T) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse([]string{"--config-file=" + filepath.Join(t.TempDir(), "nope.yaml")}))
	_, err := BuildViper(fs)
	require.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	tests := map[string][]string{
		"staging policy": {"--staging-policy=shred"},
		"log level":      {"--log-level=loud"},
		"highlight":      {"--log-display-highlight=neon"},
		"alias":          {"--aliases=transfer"},
		"empty alias":    {"--aliases=transfer="},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, args...)
			require.Error(t, err)
		})
	}
}

func TestResolveTargetsDiscovers(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	abiDir := filepath.Join(dir, "abi")
	require.NoError(os.MkdirAll(abiDir, perms.ReadWriteExecute))
	require.NoError(os.WriteFile(filepath.Join(abiDir, "vault.abi.json"), []byte("[]"), perms.ReadWrite))

	config := Config{ABIDir: abiDir, OutDir: filepath.Join(dir, "bindings")}
	targets, err := config.ResolveTargets(filesystem.NewReader())
	require.NoError(err)
	require.Equal([]bindgen.Target{{
		Name:    "Vault",
		ABI:     filepath.Join(abiDir, "vault.abi.json"),
		Out:     filepath.Join(dir, "bindings", "vault.go"),
		Package: "bindings",
	}}, targets)
}

func TestResolveTargetsEmpty(t *testing.T) {
	config := Config{ABIDir: t.TempDir()}
	_, err := config.ResolveTargets(filesystem.NewReader())
	require.ErrorIs(t, err, errNoTargets)
}
