// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// GitCommit is set by the build script
var GitCommit string

// String returns the version line printed by the CLI.
func String(commit string) string {
	format := "%s [go-ethereum=%s"
	args := []interface{}{
		Current,
		GoEthereum,
	}

	if commit != "" {
		format += ", commit=%s"
		args = append(args, commit)
	}
	format += "]\n"
	return fmt.Sprintf(format, args...)
}
