// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/perms"
)

func TestTypeName(t *testing.T) {
	tests := map[string]string{
		"contract":     "Contract",
		"erc20_token":  "Erc20Token",
		"uniswap-v3":   "UniswapV3",
		"WETH9":        "WETH9",
		"1inch":        "Contract1inch",
		"__":           "Contract",
		"router.v2":    "RouterV2",
		"already_Done": "AlreadyDone",
	}
	for stem, expected := range tests {
		t.Run(stem, func(t *testing.T) {
			require.Equal(t, expected, TypeName(stem))
		})
	}
}

func TestDiscover(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	abiDir := filepath.Join(dir, "abi")
	require.NoError(os.MkdirAll(filepath.Join(abiDir, "nested.abi.json"), perms.ReadWriteExecute))
	for _, name := range []string{"erc20_token.abi.json", "vault.abi.json", "README.md", ".abi.json"} {
		require.NoError(os.WriteFile(filepath.Join(abiDir, name), []byte("[]"), perms.ReadWrite))
	}

	targets, err := Discover(filesystem.NewReader(), abiDir, filepath.Join(dir, "bindings"))
	require.NoError(err)
	require.Equal([]Target{
		{
			Name: "Erc20Token",
			ABI:  filepath.Join(abiDir, "erc20_token.abi.json"),
			Out:  filepath.Join(dir, "bindings", "erc20_token.go"),
		},
		{
			Name: "Vault",
			ABI:  filepath.Join(abiDir, "vault.abi.json"),
			Out:  filepath.Join(dir, "bindings", "vault.go"),
		},
	}, targets)
	require.NoError(VerifyTargets(targets))
}

func TestDiscoverCollidingNames(t *testing.T) {
	require := require.New(t)

	abiDir := t.TempDir()
	for _, name := range []string{"erc-20.abi.json", "erc_20.abi.json"} {
		require.NoError(os.WriteFile(filepath.Join(abiDir, name), []byte("[]"), perms.ReadWrite))
	}

	targets, err := Discover(filesystem.NewReader(), abiDir, "bindings")
	require.NoError(err)
	require.Len(targets, 2)
	require.Equal(targets[0].Name, targets[1].Name)
	require.ErrorIs(VerifyTargets(targets), ErrInvalidTarget)
}

func TestVerifyTargetsNames(t *testing.T) {
	tests := map[string]struct {
		targets     []Target
		expectedErr error
	}{
		"same name in different directories": {
			targets: []Target{
				{Name: "Token", ABI: "abi/a.abi.json", Out: "a/token.go"},
				{Name: "Token", ABI: "abi/b.abi.json", Out: "b/token.go"},
			},
		},
		"same name in one directory": {
			targets: []Target{
				{Name: "Token", ABI: "abi/a.abi.json", Out: "out/a.go"},
				{Name: "Token", ABI: "abi/b.abi.json", Out: "out/b.go"},
			},
			expectedErr: ErrInvalidTarget,
		},
		"same name after cleaning": {
			targets: []Target{
				{Name: "Token", ABI: "abi/a.abi.json", Out: "out/a.go"},
				{Name: "Token", ABI: "abi/b.abi.json", Out: "out/../out/b.go"},
			},
			expectedErr: ErrInvalidTarget,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, VerifyTargets(test.targets), test.expectedErr)
		})
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filesystem.NewReader(), filepath.Join(t.TempDir(), "abi"), "out")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTargetVerify(t *testing.T) {
	tests := map[string]struct {
		target      Target
		expectedErr error
	}{
		"valid": {
			target: Target{Name: "Token", ABI: "abi/token.abi.json", Out: "token.go"},
		},
		"valid with package": {
			target: Target{Name: "Token", ABI: "abi/token.abi.json", Out: "token.go", Package: "token"},
		},
		"missing name": {
			target:      Target{ABI: "abi/token.abi.json", Out: "token.go"},
			expectedErr: ErrInvalidTarget,
		},
		"bad name": {
			target:      Target{Name: "2Token", ABI: "abi/token.abi.json", Out: "token.go"},
			expectedErr: ErrInvalidTarget,
		},
		"missing abi": {
			target:      Target{Name: "Token", Out: "token.go"},
			expectedErr: ErrInvalidTarget,
		},
		"missing out": {
			target:      Target{Name: "Token", ABI: "abi/token.abi.json"},
			expectedErr: ErrInvalidTarget,
		},
		"bad package": {
			target:      Target{Name: "Token", ABI: "abi/token.abi.json", Out: "token.go", Package: "my-pkg"},
			expectedErr: ErrInvalidTarget,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, test.target.Verify(), test.expectedErr)
		})
	}
}

func TestVerifyTargetsCleansPaths(t *testing.T) {
	err := VerifyTargets([]Target{
		{Name: "Token", ABI: "abi/token.abi.json", Out: "out/token.go"},
		{Name: "Vault", ABI: "abi/vault.abi.json", Out: "out/../out/token.go"},
	})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestStateString(t *testing.T) {
	require := require.New(t)

	require.Equal("unprocessed", Unprocessed.String())
	require.Equal("normalized", Normalized.String())
	require.Equal("generated", Generated.String())
	require.Equal("written", Written.String())
	require.Equal("unknown", State(42).String())
}
