// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bindgen/utils/perms"
)

func TestWriteFileAtomic(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "token.go")

	require.NoError(WriteFileAtomic(path, []byte("package one\n"), perms.ReadWriteShared))
	got, err := os.ReadFile(path)
	require.NoError(err)
	require.Equal("package one\n", string(got))

	// Overwrite with shorter content must not leave trailing bytes.
	require.NoError(WriteFileAtomic(path, []byte("package 2\n"), perms.ReadWriteShared))
	got, err = os.ReadFile(path)
	require.NoError(err)
	require.Equal("package 2\n", string(got))

	info, err := os.Stat(path)
	require.NoError(err)
	require.Equal(os.FileMode(perms.ReadWriteShared), info.Mode().Perm())

	// Only the destination remains, no temporary files.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(err)
	require.Len(entries, 1)
}

func TestWriteFileAtomicDirectoryTarget(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(os.Mkdir(target, perms.ReadWriteExecute))
	require.NoError(os.WriteFile(filepath.Join(target, "keep"), nil, perms.ReadWrite))

	require.Error(WriteFileAtomic(target, []byte("x"), perms.ReadWriteShared))

	entries, err := os.ReadDir(dir)
	require.NoError(err)
	require.Len(entries, 1)
}

func TestReader(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "a.abi.json"), []byte("[]"), perms.ReadWrite))

	r := NewReader()
	entries, err := r.ReadDir(dir)
	require.NoError(err)
	require.Len(entries, 1)
	require.Equal("a.abi.json", entries[0].Name())

	b, err := r.ReadFile(filepath.Join(dir, "a.abi.json"))
	require.NoError(err)
	require.Equal("[]", string(b))
}
