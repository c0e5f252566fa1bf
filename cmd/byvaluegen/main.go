// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// byvaluegen generates views and iterators for by-value sequence backends.
//
// Each argument is a configuration file; CONFIG.yaml generates CONFIG.go in
// the same directory. To use it from a package, add
//
//	//go:generate go run github.com/bufbuild/byvalue/cmd/byvaluegen foo_seq.yaml
//
// See package [github.com/bufbuild/byvalue/internal/gen] for the
// configuration format.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/byvalue/internal/gen"
)

// errFailed is returned when some config could not be processed. Its
// diagnostics have already been printed.
var errFailed = errors.New("byvaluegen failed")

func main() {
	if err := newCommand().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var verbose, check bool
	cmd := &cobra.Command{
		Use:   "byvaluegen [--verbose] [--check] CONFIG.yaml...",
		Short: "Generate views and iterators for by-value sequence backends",
		Args:  cobra.MinimumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				gen.SetLogger(logger)
			}
			return run(cmd.Context(), args, check)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log what the generator is doing")
	cmd.Flags().BoolVar(&check, "check", false, "report outputs that are out of date without writing them")
	return cmd
}

// run processes configs concurrently, printing a line for every config that
// fails or, with check, is stale.
func run(ctx context.Context, configs []string, check bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	errs := make([]error, len(configs))
	stale := make([]bool, len(configs))

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, config := range configs {
		group.Go(func() error {
			stale[i], errs[i] = gen.Run(ctx, config, check)
			return nil
		})
	}
	_ = group.Wait()

	failed := false
	for i, config := range configs {
		switch {
		case errs[i] != nil:
			if _, ok := gen.AsDiagnostic(errs[i]); ok {
				fmt.Fprintln(os.Stderr, errs[i])
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", config, errs[i])
			}
			failed = true
		case check && stale[i]:
			fmt.Fprintf(os.Stderr, "%s: %s is out of date\n", config, gen.OutputPath(config))
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
