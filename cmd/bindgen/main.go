// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// bindgen generates Go contract bindings from ABI documents. It is meant to
// be run from go:generate:
//
//	//go:generate go run github.com/ava-labs/bindgen/cmd/bindgen --abi-dir abi --out-dir bindings
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/bindgen/accounts/abi/bind/abigen"
	"github.com/ava-labs/bindgen/bindgen"
	"github.com/ava-labs/bindgen/config"
	"github.com/ava-labs/bindgen/utils/filesystem"
	"github.com/ava-labs/bindgen/utils/logging"
	"github.com/ava-labs/bindgen/version"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	rootCmd := newCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "bindgen failed: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bindgen",
		Short:         "Generate Go contract bindings from ABI documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Sanitize every ABI document and write its binding (default)",
			Args:  cobra.NoArgs,
			RunE:  runGenerate,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Report the names that would be rewritten without writing anything",
			Args:  cobra.NoArgs,
			RunE:  runCheck,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprint(cmd.OutOrStdout(), version.String(version.GitCommit))
			},
		},
	)
	return cmd
}

type env struct {
	config  config.Config
	log     logging.Logger
	targets []bindgen.Target
}

func setup(cmd *cobra.Command) (*env, error) {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewConsoleCore(cfg.LogLevel, cfg.LogDisplayHighlight, cmd.ErrOrStderr()),
	}
	if cfg.LogFile != "" {
		cores = append(cores, logging.NewFileCore(cfg.LogLevel, logging.DefaultFileConfig(cfg.LogFile)))
	}
	log := logging.NewLogger("", cores...)

	targets, err := cfg.ResolveTargets(filesystem.NewReader())
	if err != nil {
		log.Stop()
		return nil, err
	}
	return &env{
		config:  cfg,
		log:     log,
		targets: targets,
	}, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Stop()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	generator := abigen.Config{
		Package: e.config.Package,
		Aliases: e.config.Aliases,
	}
	registry := prometheus.NewRegistry()
	builder, err := bindgen.New(e.config.Builder, e.log, registry, generator.New)
	if err != nil {
		return err
	}
	report, err := builder.Run(ctx, e.targets)
	if e.config.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(e.config.MetricsFile, registry); err != nil {
			e.log.Warn("failed to write metrics",
				zap.String("path", e.config.MetricsFile),
				zap.Error(err),
			)
		}
	}
	if err != nil {
		return err
	}

	e.log.Info("generated bindings",
		zap.Int("numWritten", report.Written()),
		zap.Int("numRewrites", report.Rewrites()),
	)
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Stop()

	builder, err := bindgen.New(e.config.Builder, e.log, prometheus.NewRegistry(), nil)
	if err != nil {
		return err
	}
	report, err := builder.Check(cmd.Context(), e.targets)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tABI\tOUT\tREWRITES")
	for _, result := range report.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", result.Target.Name, result.Target.ABI, result.Target.Out, result.Rewrites)
	}
	return w.Flush()
}
