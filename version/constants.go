// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "github.com/ethereum/go-ethereum/params"

const Client = "bindgen"

var (
	Current = &Application{
		Name:  Client,
		Major: 0,
		Minor: 3,
		Patch: 0,
	}

	// GoEthereum is the version of the binding generator linked in.
	GoEthereum = params.VersionWithMeta
)
