// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

// GeneratorFunc constructs a generator for [target] over the sanitized
// document staged at [abiPath].
type GeneratorFunc func(target Target, abiPath string) (Generator, error)

// Generator turns one sanitized ABI document into binding source.
type Generator interface {
	Generate() (Source, error)
}

// Source is generated binding source that can be persisted.
type Source interface {
	// WriteToFile replaces [path] with the generated source.
	WriteToFile(path string) error
}
