// Package main provides the dtoctl binary: it validates JSON or YAML payloads
// against rule files, generates typed record types and lists the rule
// vocabulary.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "dtoctl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Validate and generate dto records",
		Long: `dtoctl works with dto records outside of Go code.

Commands:
  validate  - check JSON or YAML payloads against a rule file
  gen       - generate a typed record from a YAML schema
  rules     - list the rule vocabulary

Settings are read from DTO_* environment variables and optional env files;
flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "", "Log format (text, json)")
	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Env files with DTO_* settings")

	cmd.AddCommand(validateCmd(a), genCmd(a), rulesCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
