// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"ksc/internal/compiler"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/modname"
	"ksc/internal/parser"
)

var (
	outputPath string
	moduleName string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "ksc",
	Short:         "KSC compiler",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile a KSC source file and emit its IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write IR to a file instead of stdout")
	buildCmd.Flags().StringVar(&moduleName, "module-name", "", "override the derived module name")
	buildCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages")
	rootCmd.AddCommand(buildCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	if verbose {
		commonlog.Configure(1, nil)
	}
	log := commonlog.GetLogger("ksc.build")

	startTime := time.Now()
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	log.Infof("parsing %s", path)
	program, err := parser.Parse(path, string(source))
	if err != nil {
		fmt.Fprint(os.Stderr, parser.FormatError(string(source), err))
		color.Red("Compilation failed after %s", time.Since(startTime).Round(time.Microsecond))
		return fmt.Errorf("parse error in %s", path)
	}

	name := moduleName
	if name == "" {
		name = modname.Derive(path, source)
	}

	log.Infof("lowering module %s", name)
	module, err := compiler.New().Compile(name, program)
	if err != nil {
		if ce, ok := errors.AsCompileError(err); ok {
			fmt.Fprint(os.Stderr, errors.NewReporter(path, string(source)).Format(ce))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		color.Red("Compilation failed after %s", time.Since(startTime).Round(time.Microsecond))
		return fmt.Errorf("compile error in %s", path)
	}

	text := ir.Print(module)
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Infof("wrote IR to %s", outputPath)
	} else {
		fmt.Print(text)
	}

	color.Green("Successfully compiled %s in %s", path, time.Since(startTime).Round(time.Microsecond))
	return nil
}
