// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ava-labs/bindgen/utils/filesystem"
)

// ABISuffix is the file name suffix of discoverable ABI documents.
const ABISuffix = ".abi.json"

// Target pairs an ABI document with the binding generated from it.
type Target struct {
	// Name is the root type of the generated binding.
	Name string `json:"name" mapstructure:"name"`
	// ABI is the path of the interface document.
	ABI string `json:"abi" mapstructure:"abi"`
	// Out is the path the generated source is written to.
	Out string `json:"out" mapstructure:"out"`
	// Package optionally overrides the Go package of the generated source.
	Package string `json:"package,omitempty" mapstructure:"package"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s(%s -> %s)", t.Name, t.ABI, t.Out)
}

// Verify checks a single target in isolation.
func (t Target) Verify() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: missing name for %q", ErrInvalidTarget, t.ABI)
	case !token.IsIdentifier(t.Name):
		return fmt.Errorf("%w: name %q is not a Go identifier", ErrInvalidTarget, t.Name)
	case t.ABI == "":
		return fmt.Errorf("%w: missing ABI path for %s", ErrInvalidTarget, t.Name)
	case t.Out == "":
		return fmt.Errorf("%w: missing output path for %s", ErrInvalidTarget, t.Name)
	case t.Package != "" && !token.IsIdentifier(t.Package):
		return fmt.Errorf("%w: package %q of %s is not a Go identifier", ErrInvalidTarget, t.Package, t.Name)
	}
	return nil
}

// VerifyTargets checks every target, that no output path is shared between
// targets or overwrites an input, and that no two bindings declare the same
// name in one output directory.
func VerifyTargets(targets []Target) error {
	var (
		inputs  = make(map[string]string, len(targets))
		outputs = make(map[string]string, len(targets))
		names   = make(map[string]string, len(targets))
	)
	for _, t := range targets {
		if err := t.Verify(); err != nil {
			return err
		}
		inputs[filepath.Clean(t.ABI)] = t.Name
	}
	for _, t := range targets {
		out := filepath.Clean(t.Out)
		if other, ok := outputs[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %q", ErrInvalidTarget, other, t.Name, t.Out)
		}
		if other, ok := inputs[out]; ok {
			return fmt.Errorf("%w: output of %s overwrites the ABI of %s", ErrInvalidTarget, t.Name, other)
		}
		outputs[out] = t.Name

		name := filepath.Join(filepath.Dir(out), t.Name)
		if other, ok := names[name]; ok {
			return fmt.Errorf("%w: %q and %q both declare %s in %q", ErrInvalidTarget, other, t.ABI, t.Name, filepath.Dir(out))
		}
		names[name] = t.ABI
	}
	return nil
}

// Discover returns a target for every *.abi.json document in [abiDir], in
// directory order. The binding of "erc20_token.abi.json" is named
// "Erc20Token" and written to "[outDir]/erc20_token.go".
func Discover(reader filesystem.Reader, abiDir, outDir string) ([]Target, error) {
	entries, err := reader.ReadDir(abiDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", abiDir, err)
	}

	var targets []Target
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fileName, ABISuffix) {
			continue
		}
		stem := strings.TrimSuffix(fileName, ABISuffix)
		if stem == "" {
			continue
		}
		targets = append(targets, Target{
			Name: TypeName(stem),
			ABI:  filepath.Join(abiDir, fileName),
			Out:  filepath.Join(outDir, stem+".go"),
		})
	}
	return targets, nil
}

// TypeName converts a file stem into an exported Go identifier.
func TypeName(stem string) string {
	var b strings.Builder
	upper := true
	for _, r := range stem {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteString("Contract")
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Contract"
	}
	return b.String()
}
