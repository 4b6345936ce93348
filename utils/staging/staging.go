// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package staging manages the transient files that hold sanitized ABI
// documents while a binding is generated from them.
package staging

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ava-labs/bindgen/utils/hashing"
	"github.com/ava-labs/bindgen/utils/perms"
)

const (
	// Suffix is carried by every staging file name.
	Suffix = ".abi.json"

	identityLen = 4
)

// Policy decides what happens to a staging file once it has been consumed.
type Policy string

const (
	// Remove deletes the staging file on release.
	Remove Policy = "remove"
	// Keep leaves the staging file on disk for inspection.
	Keep Policy = "keep"
)

var errUnknownPolicy = errors.New("unknown staging policy")

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Remove, Keep:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownPolicy, s)
	}
}

// Dir hands out uniquely named staging files inside a single directory.
type Dir struct {
	path   string
	policy Policy
}

// NewDir returns a staging directory rooted at [path]. An empty [path] uses
// the operating system's temporary directory.
func NewDir(path string, policy Policy) *Dir {
	if path == "" {
		path = os.TempDir()
	}
	return &Dir{
		path:   path,
		policy: policy,
	}
}

func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) Policy() Policy {
	return d.policy
}

// Acquire creates a new staging file holding [contents]. The file name is
// derived from [name] and a digest of [identity] and carries a random
// component, so two acquisitions never share a path.
func (d *Dir) Acquire(name string, identity []byte, contents []byte) (*File, error) {
	if err := os.MkdirAll(d.path, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed to create staging directory %q: %w", d.path, err)
	}

	digest := hex.EncodeToString(hashing.Checksum(identity, identityLen))
	pattern := fmt.Sprintf("%s-%s-*%s", filepath.Base(name), digest, Suffix)
	f, err := os.CreateTemp(d.path, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file in %q: %w", d.path, err)
	}

	file := &File{
		path:   f.Name(),
		policy: d.policy,
	}
	if _, err := f.Write(contents); err != nil {
		_ = f.Close()
		_ = os.Remove(file.path)
		return nil, fmt.Errorf("failed to write staging file %q: %w", file.path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(file.path)
		return nil, fmt.Errorf("failed to close staging file %q: %w", file.path, err)
	}
	return file, nil
}

// File is a staged document.
type File struct {
	path   string
	policy Policy

	once sync.Once
	err  error
}

func (f *File) Path() string {
	return f.path
}

// Release disposes of the file according to the staging policy. Calling it
// again returns the result of the first call.
func (f *File) Release() error {
	f.once.Do(func() {
		if f.policy == Keep {
			return
		}
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			f.err = fmt.Errorf("failed to remove staging file %q: %w", f.path, err)
		}
	})
	return f.err
}
