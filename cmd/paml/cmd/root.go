package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/paml/parser"
	"github.com/msto63/paml/foundation/paml/value"
	"github.com/msto63/paml/foundation/utils/filex"
	"github.com/msto63/paml/internal/convert"
	"github.com/msto63/paml/pkg/core/config"
	"github.com/msto63/paml/pkg/core/logging"
)

// stdinName is the file argument that reads standard input
const stdinName = "-"

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *pamllog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paml",
	Short: "PAML - whitespace-delimited data format",
	Long: `paml parses, checks, formats and converts PAML documents.

PAML is a JSON-like format where whitespace separates elements:

  {name demo ports [80 443] motd '''it's up'''}

Commands:
  parse    - print the value tree of a document
  fmt      - rewrite documents in canonical form
  check    - validate documents
  convert  - translate between PAML, JSON, YAML, TOML and protobuf
  version  - print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI and returns the process exit status
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return exitCode(err)
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PAML_CONFIG, ./paml.toml, ~/.config/paml/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output and debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, json or logfmt")
}

// setup loads the configuration and builds the run logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := logging.LoggerConfig{
		Name:   "paml",
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}
	if verbose {
		logCfg.Level = "debug"
	}
	if logFormat != "" {
		if _, err := pamllog.ParseFormat(logFormat); err != nil {
			return pamlerror.Wrap(err, "--log-format").WithCode(pamlerror.CodeInvalidInput)
		}
		logCfg.Format = logFormat
	}
	logger = logging.NewLogger(logCfg)
	pamllog.SetDefault(logger)

	logger.Debug("command started", pamllog.Fields{
		"command": cmd.Name(),
		"args":    len(args),
		"config":  cfg.Path,
	})
	return nil
}

// readInput reads a file argument, or standard input for "-"
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var (
		r   io.Reader
		src = name
	)
	if name == stdinName {
		r = cmd.InOrStdin()
		src = "<stdin>"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, pamlerror.Wrap(err, "open input").
				WithCode(pamlerror.CodeIOError).
				WithSource(src)
		}
		defer f.Close()
		r = f
	}

	limit := int64(cfg.Parser.MaxInputSize)
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pamlerror.Wrap(err, "read input").
			WithCode(pamlerror.CodeIOError).
			WithSource(src)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, pamlerror.Newf("input exceeds %s", cfg.Parser.MaxInputSize).
			WithCode(pamlerror.CodeInputTooLarge).
			WithSource(src)
	}
	return data, nil
}

// newParser builds a parser from the configured limits
func newParser() (*parser.Parser, error) {
	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxDepth:       cfg.Parser.MaxDepth,
		MaxInputLength: int(cfg.Parser.MaxInputSize),
	})
	if err != nil {
		return nil, pamlerror.Wrap(err, "create parser").WithCode(pamlerror.CodeInvalidConfig)
	}
	return p, nil
}

// decode reads data in the given format; PAML goes through the configured
// parser so its limits and logging apply
func decode(name string, format convert.Format, data []byte) (value.Value, error) {
	var (
		v   value.Value
		err error
	)
	if format == convert.FormatPAML {
		var p *parser.Parser
		if p, err = newParser(); err != nil {
			return value.Value{}, err
		}
		v, err = p.Parse(string(data))
	} else {
		v, err = convert.Decode(format, data)
	}
	if err != nil {
		return value.Value{}, pamlerror.Wrap(err, "decode").
			WithSource(displayName(name)).
			WithOperation("decode " + format.String())
	}
	return v, nil
}

// inputFormat returns the explicit format, else the one implied by the
// file extension, else PAML
func inputFormat(explicit, name string) (convert.Format, error) {
	if explicit != "" {
		return convert.ParseFormat(explicit)
	}
	if f, ok := convert.FormatFromPath(name); ok {
		return f, nil
	}
	return convert.FormatPAML, nil
}

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	return name
}

// useColor reports whether output to w should be styled
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	terminal := ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	return cfg.UseColor(terminal)
}

func exitCode(err error) int {
	return pamlerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "paml: %v\n", err)
	if verbose {
		var perr *pamlerror.Error
		if errors.As(err, &perr) {
			fmt.Fprintln(w, perr.String())
		}
	}
}

// expandArgs replaces directory arguments by the *.paml files below them
func expandArgs(args []string) ([]string, error) {
	var names []string
	for _, arg := range args {
		if arg == stdinName || !filex.IsDir(arg) {
			names = append(names, arg)
			continue
		}
		found, err := filex.FindFiles(arg, "*.paml")
		if err != nil {
			return nil, pamlerror.Wrap(err, "expand directory").WithCode(pamlerror.CodeIOError).WithSource(arg)
		}
		if len(found) == 0 {
			logger.Warn("no documents found", pamllog.Field("dir", arg))
		}
		names = append(names, found...)
	}
	return names, nil
}
