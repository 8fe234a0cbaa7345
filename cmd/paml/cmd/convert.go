package cmd

import (
	"github.com/spf13/cobra"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/utils/filex"
	"github.com/msto63/paml/internal/convert"
)

var (
	convertFrom   string
	convertTo     string
	convertOut    string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Translate between PAML, JSON, YAML, TOML and protobuf",
	Long: `Reads a document in one format and writes it in another.

The input format defaults to the file extension, the output format to
PAML. proto is the binary encoding of google.protobuf.Value, protojson its
JSON mapping.

Examples:
  paml convert config.json
  paml convert --to yaml config.paml
  paml convert --from yaml --to json --pretty - < in.yaml
  paml convert --to proto -O value.pb config.paml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input format: paml, json, yaml, toml, proto, protojson")
	convertCmd.Flags().StringVar(&convertTo, "to", "paml", "output format: paml, json, yaml, toml, proto, protojson")
	convertCmd.Flags().StringVarP(&convertOut, "out", "O", "", "output file (default: standard output)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "multi-line output where the format has one")
}

func runConvert(cmd *cobra.Command, args []string) error {
	name := args[0]
	from, err := inputFormat(convertFrom, name)
	if err != nil {
		return err
	}
	to, err := convert.ParseFormat(convertTo)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, name)
	if err != nil {
		return err
	}
	v, err := decode(name, from, data)
	if err != nil {
		return err
	}

	encoded, err := convert.Encode(to, v, convert.EncodeOptions{Pretty: convertPretty})
	if err != nil {
		return pamlerror.Wrap(err, "convert").WithSource(displayName(name))
	}

	logger.Debug("converted", pamllog.Fields{
		"from":   from.String(),
		"to":     to.String(),
		"input":  len(data),
		"output": len(encoded),
	})

	if convertOut == "" {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}
	if err := filex.WriteFileAtomic(convertOut, encoded, 0644); err != nil {
		return pamlerror.Wrap(err, "write output").
			WithCode(pamlerror.CodeIOError).
			WithSource(convertOut)
	}
	return nil
}
