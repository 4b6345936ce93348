// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

const (
	ReadWrite        = 0o640
	ReadWriteExecute = 0o750

	// Readable by every user.
	ReadWriteShared        = 0o644
	ReadWriteExecuteShared = 0o755
)
