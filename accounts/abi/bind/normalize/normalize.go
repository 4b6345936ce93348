// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package normalize rewrites ABI documents so that every field and attribute
// name can be used as an identifier in generated code.
//
// Some interface authors prefix reserved or unnamed parameters with an
// underscore. Such names do not survive the trip into strongly typed
// bindings, so the leading underscore of any quoted value that directly
// follows a quoted key is replaced with [Marker]:
//
//	{"name": "_owner"} -> {"name": "u_owner"}
//
// Underscores anywhere else are left alone.
package normalize

import (
	"fmt"
	"regexp"

	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/staging"
)

// Marker replaces the leading underscore of a rewritten value.
const Marker = "u_"

// word and space match Unicode word characters and white space. RE2's \w and
// \s are ASCII only.
const (
	word  = `[\p{L}\p{M}\p{Nd}\p{Pc}]`
	space = `[\s\p{Z}\x{85}]`
)

var (
	rule        = regexp.MustCompile(`("` + word + `+"` + space + `?:` + space + `?")_(` + word + `+")`)
	replacement = []byte("${1}" + Marker + "${2}")
)

// Rewrite returns [src] with every underscore-prefixed value rewritten, and
// the number of rewrites. [src] is never modified. When nothing matches the
// returned slice is a copy of [src].
func Rewrite(src []byte) ([]byte, int) {
	n := len(rule.FindAllIndex(src, -1))
	if n == 0 {
		return append([]byte(nil), src...), 0
	}
	return rule.ReplaceAll(src, replacement), n
}

// Stager creates staging files.
type Stager interface {
	Acquire(name string, identity []byte, contents []byte) (*staging.File, error)
}

// Staged is a sanitized document on disk. The caller owns the staging file
// and must release it.
type Staged struct {
	*staging.File

	// Rewrites is the number of values that were rewritten.
	Rewrites int
}

type Normalizer struct {
	reader filesystem.Reader
	stager Stager
}

func New(reader filesystem.Reader, stager Stager) *Normalizer {
	return &Normalizer{
		reader: reader,
		stager: stager,
	}
}

// Stage reads the document at [abiPath] and writes its sanitized copy to a
// new staging file named after [name]. The original document is not touched.
func (n *Normalizer) Stage(name, abiPath string) (*Staged, error) {
	contents, err := n.reader.ReadFile(abiPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", abiPath, err)
	}

	sanitized, rewrites := Rewrite(contents)
	file, err := n.stager.Acquire(name, []byte(abiPath), sanitized)
	if err != nil {
		return nil, err
	}
	return &Staged{
		File:     file,
		Rewrites: rewrites,
	}, nil
}
