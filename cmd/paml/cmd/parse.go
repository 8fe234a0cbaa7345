package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/paml/internal/convert"
	"github.com/msto63/paml/internal/render"
)

var (
	parseOutput string
	parseFrom   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the value tree of a document",
	Long: `Parses a document and prints its values.

The default output is an indented tree showing every node with its kind.
With --output the value is written in another format instead.

Examples:
  paml parse config.paml
  paml parse -o json config.paml
  echo '{a [1 2]}' | paml parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output: tree, paml, json, yaml, toml, proto or protojson (default from config)")
	parseCmd.Flags().StringVar(&parseFrom, "from", "", "input format (default: by extension, else paml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	name := args[0]
	from, err := inputFormat(parseFrom, name)
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

	output := parseOutput
	if output == "" {
		output = cfg.Output.Format
	}
	out := cmd.OutOrStdout()

	if output == "tree" {
		_, err := fmt.Fprint(out, render.Tree(v, render.Options{
			Color:  useColor(out),
			Indent: cfg.Output.Indent,
		}))
		return err
	}

	to, err := convert.ParseFormat(output)
	if err != nil {
		return err
	}
	encoded, err := convert.Encode(to, v, convert.EncodeOptions{Pretty: true})
	if err != nil {
		return err
	}
	_, err = out.Write(encoded)
	return err
}
