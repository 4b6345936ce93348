// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// Application is a named semantic version.
type Application struct {
	Name  string `json:"name"  yaml:"name"`
	Major int    `json:"major" yaml:"major"`
	Minor int    `json:"minor" yaml:"minor"`
	Patch int    `json:"patch" yaml:"patch"`
}

func (a *Application) String() string {
	return fmt.Sprintf("%s/%d.%d.%d", a.Name, a.Major, a.Minor, a.Patch)
}
