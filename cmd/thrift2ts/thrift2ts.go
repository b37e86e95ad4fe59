// Copyright (c) 2026 Codpoe
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Codpoe/thrift-parser/compiler"
	"github.com/Codpoe/thrift-parser/tsgen"
)

type cmdCompile struct {
	srcRoot string
	outRoot string
	workers int
	verbose bool
}

func (cmd *cmdCompile) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.srcRoot, "src-root", "s", ".", "root of the Thrift source tree")
	flags.StringVarP(&cmd.outRoot, "out-root", "o", "gen", "output root for generated TypeScript")
	flags.IntVarP(&cmd.workers, "workers", "j", 0, "worker pool size (default: available parallelism)")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "log every compiled file")
}

func (cmd *cmdCompile) run(argv []string) int {
	logger := logrus.New()
	if cmd.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts := []compiler.Option{compiler.WithLogger(logger)}
	if cmd.workers > 0 {
		opts = append(opts, compiler.WithWorkers(cmd.workers))
	}

	err := compiler.Compile(argv, cmd.srcRoot, cmd.outRoot, tsgen.GenerateOptions{}, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	cmd := &cmdCompile{}
	rootCmd := &cobra.Command{
		Use:   "thrift2ts [options] FILE...",
		Short: "Compile Thrift IDL into TypeScript declarations",
		Args:  cobra.MinimumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			os.Exit(cmd.run(args))
			return nil
		},
	}
	cmd.flags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
