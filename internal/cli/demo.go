package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	xgxchain "github.com/xgx-io/xgx-chain"
	"github.com/xgx-io/xgx-chain/errlog"
)

var (
	demoKinds = xgxchain.MustDeclare(xgxchain.DefaultNamespace,
		xgxchain.Pair{Name: "One", Message: "this error is first one."},
		xgxchain.Pair{Name: "Two", Message: "this error is second one."},
		xgxchain.Pair{Name: "Three", Message: "this error is third one."},
		xgxchain.Pair{Name: "Well", Message: "is this?"},
	)
	demoOne   = demoKinds.MustKind("One")
	demoTwo   = demoKinds.MustKind("Two")
	demoThree = demoKinds.MustKind("Three")
)

// The demo stamps are fixed so the output is stable across builds.
func aaa() (int, error) {
	return 0, xgxchain.Originatef(demoOne, xgxchain.At("src/main.go", 11, 12), "%d.error bang!", 1)
}

func bbb() (int, error) {
	n, err := aaa()
	if err != nil {
		return 0, xgxchain.Escalatef(err, demoTwo, xgxchain.At("src/main.go", 14, 13), "aaa()", "%d.two <- one.", 2)
	}
	return n, nil
}

func ccc() (int, error) {
	n, err := bbb()
	if err != nil {
		return 0, xgxchain.Escalatef(err, demoThree, xgxchain.At("src/main.go", 18, 8), "bbb()", "%d.three <- two.", 3)
	}
	return n, nil
}

// runDemo extracts kind match from ccc(), substituting 127.
func runDemo(match *xgxchain.Kind) (int, error) {
	n, err := ccc()
	return xgxchain.Extract(xgxchain.FromPair(n, err), match, 127)
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "demo [--match <Kind>]",
		Short: "Render a three-step chain and recover one kind",
		Long: `Run aaa() -> bbb() -> ccc(), where each step escalates the previous
failure to a new kind, then try to recover one kind with 127.

Kinds: One, Two, Three, Well. Only Three is recoverable because matching
looks at the most recent classification.

Examples:
  xgxchain demo              # Well does not match; prints the chain
  xgxchain demo --match Three`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := demoKinds.Lookup(match)
			if !ok {
				return fmt.Errorf("unknown kind %q", match)
			}
			out := cmd.OutOrStdout()
			c, err := runDemo(k)
			if err != nil {
				if root.jsonOutput {
					s := errlog.SnapshotOf(err)
					data, jerr := s.JSON()
					if jerr != nil {
						return jerr
					}
					fmt.Fprintln(out, string(data))
				} else {
					errorLabel.Fprintln(out, "Error:")
					fmt.Fprintln(out, xgxchain.ChainOf(err))
				}
				return ErrAlreadyHandled
			}
			if root.jsonOutput {
				printJSON(out, map[string]int{"recovered": c})
				return nil
			}
			fmt.Fprintf(out, "1/%d is cosmological constant.\n", c)
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "Well", "Kind to recover")
	return cmd
}
