// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package abigen adapts the go-ethereum binding generator to the bindgen
// generator capability.
package abigen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"golang.org/x/tools/imports"

	"github.com/ava-labs/bindgen/bindgen"
	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/perms"
)

// DefaultPackage is the Go package of generated bindings when none is
// configured.
const DefaultPackage = "bindings"

var (
	_ bindgen.Generator = (*Generator)(nil)
	_ bindgen.Source    = (*Source)(nil)

	errEmptyName = errors.New("binding name must not be empty")
)

type Config struct {
	// Package is the Go package of the generated file unless the target
	// overrides it.
	Package string
	// Aliases renames ABI methods and events before binding, keyed by their
	// original name.
	Aliases map[string]string
}

// New implements [bindgen.GeneratorFunc].
func (c Config) New(target bindgen.Target, abiPath string) (bindgen.Generator, error) {
	g, err := c.Open(target, abiPath)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Open reads and parses the ABI document at [abiPath] for [target]. A
// document the go-ethereum ABI parser rejects fails here.
func (c Config) Open(target bindgen.Target, abiPath string) (*Generator, error) {
	name := target.Name
	if name == "" {
		return nil, errEmptyName
	}
	contents, err := os.ReadFile(abiPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI %q: %w", abiPath, err)
	}
	if _, err := abi.JSON(strings.NewReader(string(contents))); err != nil {
		return nil, fmt.Errorf("failed to parse ABI %q: %w", abiPath, err)
	}

	pkg := target.Package
	if pkg == "" {
		pkg = c.Package
	}
	if pkg == "" {
		pkg = DefaultPackage
	}
	return &Generator{
		name:    name,
		pkg:     pkg,
		abi:     string(contents),
		aliases: c.Aliases,
	}, nil
}

// Generator binds a single contract.
type Generator struct {
	name    string
	pkg     string
	abi     string
	aliases map[string]string
}

func (g *Generator) Generate() (bindgen.Source, error) {
	code, err := bind.Bind(
		[]string{g.name},
		[]string{g.abi},
		[]string{""},
		nil,
		g.pkg,
		bind.LangGo,
		nil,
		g.aliases,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate binding %s: %w", g.name, err)
	}

	tidy, err := imports.Process(strings.ToLower(g.name)+".go", []byte(code), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format binding %s: %w", g.name, err)
	}
	return &Source{code: tidy}, nil
}

// Source is the generated Go text of one binding.
type Source struct {
	code []byte
}

func (s *Source) Bytes() []byte {
	return s.code
}

// WriteToFile replaces [path] with the generated source.
func (s *Source) WriteToFile(path string) error {
	return filesystem.WriteFileAtomic(path, s.code, perms.ReadWriteShared)
}
