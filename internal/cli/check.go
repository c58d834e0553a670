package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-chain/kindtable"
)

// checkReport is the --json form of a successful check.
type checkReport struct {
	Table         string        `json:"table"`
	FormatVersion string        `json:"formatVersion"`
	Namespace     string        `json:"namespace"`
	Package       string        `json:"package"`
	Kinds         []reportKind  `json:"kinds"`
	IO            []reportIORow `json:"io,omitempty"`
}

type reportKind struct {
	Name    string `json:"name"`
	Marker  string `json:"marker"`
	Message string `json:"message"`
}

type reportIORow struct {
	Foreign string `json:"foreign"`
	Kind    string `json:"kind"`
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check -f <table>",
		Short: "Validate a kind table and list its kinds",
		Long: `Validate a kind table: field rules, format version, duplicate names and
io references. The table is then declared and, if it has an io section,
bridged, exactly as generated code would do at init.

Examples:
  xgxchain check -f kinds.yaml
  xgxchain check -f kinds.yaml -j`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := kindtable.Load(file)
			if err != nil {
				return err
			}
			ns, err := t.Declare()
			if err != nil {
				return err
			}
			b, err := t.Bridge(ns)
			if err != nil {
				return err
			}
			log.Debug().Str("table", file).Int("kinds", ns.Len()).Int("io", len(b.Table())).Msg("table ok")

			report := checkReport{
				Table:         file,
				FormatVersion: t.FormatVersion,
				Namespace:     ns.Name(),
				Package:       t.PackageName(),
			}
			for _, k := range ns.Kinds() {
				report.Kinds = append(report.Kinds, reportKind{Name: k.Name(), Marker: k.Marker(), Message: k.Message()})
			}
			for _, m := range b.Table() {
				report.IO = append(report.IO, reportIORow{Foreign: m.Foreign.String(), Kind: m.Kind.Marker()})
			}

			out := cmd.OutOrStdout()
			if root.jsonOutput {
				printJSON(out, report)
				return nil
			}
			okLabel.Fprintf(out, "ok ")
			fmt.Fprintf(out, "%s: namespace %s, %d kinds\n", file, report.Namespace, len(report.Kinds))
			for _, k := range report.Kinds {
				fmt.Fprint(out, "  ")
				markerLabel.Fprintf(out, "<%s>", k.Marker)
				fmt.Fprintf(out, " %s\n", k.Message)
			}
			for _, r := range report.IO {
				fmt.Fprintf(out, "  io %s -> %s\n", r.Foreign, r.Kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Kind table (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
