// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bindgen drives binding generation for a list of targets: every ABI
// document is sanitized into a staging file, handed to a generator, and the
// generated source is written to the target's output path.
package bindgen

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/bindgen/accounts/abi/bind/normalize"
	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/logging"
	"github.com/ava-labs/bindgen/utils/staging"
	"github.com/ava-labs/bindgen/utils/wrappers"
)

type Config struct {
	// StagingDir holds sanitized documents while they are consumed. Empty
	// means the operating system's temporary directory.
	StagingDir string
	// StagingPolicy decides whether staging files are removed after use.
	StagingPolicy staging.Policy
}

// Result is the outcome of one target.
type Result struct {
	Target Target
	// State is the last state the target reached.
	State State
	// Rewrites is the number of names the normalizer rewrote.
	Rewrites int
	// Staged is the staging path used for the target. It only exists on disk
	// after the run when the staging policy is [staging.Keep].
	Staged string
}

// Report lists the results of a run in processing order.
type Report struct {
	Results []Result
}

// Written returns the number of targets whose binding was written.
func (r *Report) Written() int {
	n := 0
	for _, result := range r.Results {
		if result.State == Written {
			n++
		}
	}
	return n
}

// Rewrites returns the total number of rewritten names.
func (r *Report) Rewrites() int {
	n := 0
	for _, result := range r.Results {
		n += result.Rewrites
	}
	return n
}

type Builder struct {
	log          logging.Logger
	metrics      metrics
	reader       filesystem.Reader
	normalizer   *normalize.Normalizer
	newGenerator GeneratorFunc
}

// New returns a builder that constructs generators with [newGenerator] and
// registers its metrics with [registerer].
func New(
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
	newGenerator GeneratorFunc,
) (*Builder, error) {
	policy := config.StagingPolicy
	if policy == "" {
		policy = staging.Remove
	}
	reader := filesystem.NewReader()
	b := &Builder{
		log:          log,
		reader:       reader,
		normalizer:   normalize.New(reader, staging.NewDir(config.StagingDir, policy)),
		newGenerator: newGenerator,
	}
	if err := b.metrics.initialize(namespace, registerer); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return b, nil
}

// Run processes [targets] in order and stops at the first failure. The
// returned report holds every target that was started, including the failed
// one. [ctx] is only consulted between targets.
func (b *Builder) Run(ctx context.Context, targets []Target) (*Report, error) {
	if err := VerifyTargets(targets); err != nil {
		return nil, err
	}

	b.log.Info("generating bindings",
		zap.Int("numTargets", len(targets)),
	)
	report := &Report{
		Results: make([]Result, 0, len(targets)),
	}
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := b.build(target)
		report.Results = append(report.Results, result)
		b.metrics.numRewrites.Add(float64(result.Rewrites))
		if err != nil {
			b.metrics.numFailed.WithLabelValues(string(stageOf(err))).Inc()
			b.log.Error("failed to generate binding",
				zap.Stringer("target", target),
				zap.Stringer("state", result.State),
				zap.Error(err),
			)
			return report, err
		}
		b.metrics.numWritten.Inc()
	}
	return report, nil
}

func (b *Builder) build(target Target) (Result, error) {
	result := Result{
		Target: target,
		State:  Unprocessed,
	}

	staged, err := b.normalizer.Stage(target.Name, target.ABI)
	if err != nil {
		return result, newTargetError(target, StageNormalize, ErrIO, err)
	}
	result.State = Normalized
	result.Rewrites = staged.Rewrites
	result.Staged = staged.Path()
	b.log.Debug("staged sanitized ABI",
		zap.String("target", target.Name),
		zap.String("staging", staged.Path()),
		zap.Int("rewrites", staged.Rewrites),
	)

	errs := wrappers.Errs{}
	errs.Add(b.emit(target, staged.Path(), &result))
	if err := staged.Release(); err != nil {
		errs.Add(newTargetError(target, StageRelease, ErrIO, err))
	}
	if errs.Errored() {
		return result, errs.Err
	}

	b.log.Info("wrote binding",
		zap.String("target", target.Name),
		zap.String("abi", target.ABI),
		zap.String("out", target.Out),
		zap.Int("rewrites", result.Rewrites),
	)
	return result, nil
}

func (b *Builder) emit(target Target, stagedPath string, result *Result) error {
	generator, err := b.newGenerator(target, stagedPath)
	if err != nil {
		return newTargetError(target, StageGenerate, ioOr(err, ErrGeneration), err)
	}
	source, err := generator.Generate()
	if err != nil {
		return newTargetError(target, StageGenerate, ErrGeneration, err)
	}
	result.State = Generated
	b.log.Debug("generated binding",
		zap.String("target", target.Name),
	)

	if err := source.WriteToFile(target.Out); err != nil {
		return newTargetError(target, StageWrite, ErrIO, err)
	}
	result.State = Written
	return nil
}

// Check reports how many names would be rewritten for each target without
// staging or writing anything.
func (b *Builder) Check(ctx context.Context, targets []Target) (*Report, error) {
	if err := VerifyTargets(targets); err != nil {
		return nil, err
	}

	report := &Report{
		Results: make([]Result, 0, len(targets)),
	}
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		contents, err := b.reader.ReadFile(target.ABI)
		if err != nil {
			return report, newTargetError(target, StageNormalize, ErrIO, fmt.Errorf("failed to read %q: %w", target.ABI, err))
		}
		_, rewrites := normalize.Rewrite(contents)
		report.Results = append(report.Results, Result{
			Target:   target,
			State:    Unprocessed,
			Rewrites: rewrites,
		})
	}
	return report, nil
}
