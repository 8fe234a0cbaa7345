package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	"github.com/msto63/paml/foundation/paml/value"
	"github.com/msto63/paml/internal/render"
)

var checkFrom string

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate documents",
	Long: `Parses every file and reports ok or the first error with its position.
Directory arguments are searched recursively for *.paml files.
With --verbose the node statistics of valid documents are shown as well.

The exit status is that of the first failure: 2 for syntax errors,
3 for conversion errors, 5 for I/O errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFrom, "from", "", "input format (default: by extension, else paml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	opts := render.Options{Color: useColor(out)}

	names, err := expandArgs(args)
	if err != nil {
		return err
	}

	var (
		firstErr error
		failed   int
	)
	for _, name := range names {
		v, err := checkOne(cmd, name)
		fmt.Fprintln(out, render.Status(displayName(name), err, opts))
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if verbose {
			fmt.Fprintln(out, "     "+formatStats(value.Collect(v)))
		}
	}

	if firstErr != nil {
		return pamlerror.Wrapf(firstErr, "%d of %d file(s) failed", failed, len(names))
	}
	return nil
}

func checkOne(cmd *cobra.Command, name string) (value.Value, error) {
	from, err := inputFormat(checkFrom, name)
	if err != nil {
		return value.Value{}, err
	}
	data, err := readInput(cmd, name)
	if err != nil {
		return value.Value{}, err
	}
	return decode(name, from, data)
}

func formatStats(s value.Stats) string {
	kinds := make([]string, 0, len(s.ByKind))
	for k, n := range s.ByKind {
		kinds = append(kinds, fmt.Sprintf("%s=%d", k, n))
	}
	sort.Strings(kinds)
	return fmt.Sprintf("nodes=%d depth=%d %s", s.Nodes, s.MaxDepth, strings.Join(kinds, " "))
}
