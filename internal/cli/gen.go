package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-chain/internal/gen"
	"github.com/xgx-io/xgx-chain/kindtable"
)

type genOptions struct {
	file    string
	output  string
	pkgName string
}

func newGenCmd(root *rootOptions) *cobra.Command {
	o := &genOptions{}
	cmd := &cobra.Command{
		Use:   "gen -f <table> [-o <file>]",
		Short: "Generate Go declarations from a kind table",
		Long: `Generate Go declarations from a YAML or TOML kind table.

The output declares the namespace, one variable per kind, the External kind
and, when the table has an io section, the IOBridge.

Examples:
  xgxchain gen -f kinds.yaml -o kinds_gen.go
  xgxchain gen -f kinds.toml --package apperr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := kindtable.Load(o.file)
			if err != nil {
				return err
			}
			src, err := gen.Generate(t, gen.Options{Package: o.pkgName, Source: filepath.Base(o.file)})
			if err != nil {
				return err
			}
			if o.output == "" || o.output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(o.output, src, 0o644); err != nil {
				return err
			}
			log.Info().Str("table", o.file).Str("output", o.output).Int("kinds", len(t.Kinds)).Msg("generated")
			if root.jsonOutput {
				printJSON(cmd.OutOrStdout(), map[string]any{"output": o.output, "kinds": len(t.Kinds)})
			} else {
				okLabel.Fprintf(cmd.OutOrStdout(), "wrote %s (%d kinds)\n", o.output, len(t.Kinds))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Kind table (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file; stdout when empty or -")
	cmd.Flags().StringVar(&o.pkgName, "package", "", "Package name; defaults to the table's package")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
