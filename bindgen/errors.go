// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrIO marks read, create or write failures on an input, staging or
	// output path.
	ErrIO = errors.New("i/o failure")
	// ErrGeneration marks a document the generator rejected.
	ErrGeneration = errors.New("generation failure")
	// ErrInvalidTarget marks a target list that cannot be processed.
	ErrInvalidTarget = errors.New("invalid target")
)

// Stage names the step of a target's processing that failed.
type Stage string

const (
	StageNormalize Stage = "normalize"
	StageGenerate  Stage = "generate"
	StageWrite     Stage = "write"
	StageRelease   Stage = "release"
)

// TargetError reports which target failed, at which stage, and why.
type TargetError struct {
	Target Target
	Stage  Stage
	// Kind is one of [ErrIO] or [ErrGeneration].
	Kind error
	Err  error
}

func newTargetError(target Target, stage Stage, kind error, err error) *TargetError {
	return &TargetError{
		Target: target,
		Stage:  stage,
		Kind:   kind,
		Err:    err,
	}
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("binding %s (%s -> %s) failed to %s: %s: %v",
		e.Target.Name,
		e.Target.ABI,
		e.Target.Out,
		e.Stage,
		e.Kind,
		e.Err,
	)
}

func (e *TargetError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ioOr returns [ErrIO] if [err] came from the filesystem and [fallback]
// otherwise.
func ioOr(err error, fallback error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ErrIO
	}
	return fallback
}

// stageOf returns the stage [err] failed at, or the empty stage if [err] is
// not a [TargetError].
func stageOf(err error) Stage {
	var targetErr *TargetError
	if errors.As(err, &targetErr) {
		return targetErr.Stage
	}
	return ""
}
