// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

//go:generate go run github.com/golang/mock/mockgen -package=bindgenmock -destination=bindgenmock/generator.go -mock_names=Generator=Generator,Source=Source . Generator,Source
