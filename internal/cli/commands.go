// Package cli implements the xgxchain command line: code generation from
// kind tables, table checking, and a demonstration of chain rendering.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	jsonitor "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-chain/errlog"
)

var json = jsonitor.ConfigCompatibleWithStandardLibrary

// ErrAlreadyHandled tells Execute the command already reported its failure.
var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)
var markerLabel = color.New(color.FgCyan)

// rootOptions holds the persistent flags.
type rootOptions struct {
	jsonOutput bool
	logLevel   string
}

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands in parallel.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "xgxchain [command] [flags]",
		Short: "xgxchain - kind tables and error chains",
		Long: `xgxchain works with declarative kind tables.

Examples:
  # Generate Go declarations from a table
  xgxchain gen -f kinds.yaml -o kinds_gen.go

  # Validate a table and list its kinds
  xgxchain check -f kinds.toml

  # Show how a three-step chain renders
  xgxchain demo --match Three`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SilenceErrors = true
	root.SilenceUsage = true

	root.PersistentFlags().BoolVarP(&opts.jsonOutput, "json", "j", false, "Output in JSON format")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")

	root.AddCommand(newGenCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newDemoCmd(opts))
	return root
}

func (o *rootOptions) initLogging(w io.Writer) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	errlog.Init(w, level)
	errlog.Install()
	return nil
}

// Execute runs the CLI and exits non-zero on failure. Called by main.main().
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, ErrAlreadyHandled) {
		os.Exit(1)
	}
	if jsonFlag(root) {
		printJSON(os.Stdout, map[string]string{"error": err.Error()})
	} else {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func jsonFlag(root *cobra.Command) bool {
	v, err := root.PersistentFlags().GetBool("json")
	return err == nil && v
}

// printJSON writes data as indented JSON.
func printJSON(w io.Writer, data interface{}) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(out))
}
