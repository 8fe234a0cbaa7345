package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
	"github.com/msto63/paml/foundation/utils/filex"
	"github.com/msto63/paml/internal/convert"
)

var (
	fmtWrite   bool
	fmtCheck   bool
	fmtCompact bool
	fmtIndent  string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Rewrite documents in canonical form",
	Long: `Formats PAML documents canonically.

Comments are dropped and every string is written in its shortest quoting.
Without --write the result goes to standard output. Directory arguments
are searched recursively for *.paml files.

Examples:
  paml fmt config.paml
  paml fmt --write a.paml b.paml
  paml fmt --check *.paml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "only report files that are not formatted")
	fmtCmd.Flags().BoolVar(&fmtCompact, "compact", false, "single-line output")
	fmtCmd.Flags().StringVar(&fmtIndent, "indent", "", "indentation unit (default from config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtCheck {
		return pamlerror.New("--write and --check are mutually exclusive").WithCode(pamlerror.CodeInvalidInput)
	}

	names, err := expandArgs(args)
	if err != nil {
		return err
	}

	var unformatted []string
	for _, name := range names {
		if fmtWrite && name == stdinName {
			return pamlerror.New("cannot --write standard input").WithCode(pamlerror.CodeInvalidInput)
		}

		data, err := readInput(cmd, name)
		if err != nil {
			return err
		}
		v, err := decode(name, convert.FormatPAML, data)
		if err != nil {
			return err
		}
		formatted := format(v)

		switch {
		case fmtCheck:
			if !bytes.Equal(data, formatted) {
				unformatted = append(unformatted, name)
				fmt.Fprintln(cmd.OutOrStdout(), displayName(name))
			}
		case fmtWrite:
			if bytes.Equal(data, formatted) {
				continue
			}
			if err := writeFormatted(name, formatted); err != nil {
				return err
			}
			logger.Info("formatted", pamllog.Field("file", name))
		default:
			if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
				return err
			}
		}
	}

	if len(unformatted) > 0 {
		return pamlerror.Newf("%d file(s) not formatted", len(unformatted)).
			WithCode(pamlerror.CodeInvalidInput).
			WithDetail("files", unformatted)
	}
	return nil
}

func format(v value.Value) []byte {
	if fmtCompact {
		return []byte(printer.Serialize(v) + "\n")
	}
	indent := fmtIndent
	if indent == "" {
		indent = cfg.Output.Indent
	}
	return []byte(printer.New(printer.Options{Indent: indent}).Sprint(v))
}

func writeFormatted(name string, data []byte) error {
	if err := filex.WriteFileAtomic(name, data, 0644); err != nil {
		return pamlerror.Wrap(err, "write").WithCode(pamlerror.CodeIOError).WithSource(name)
	}
	return nil
}
