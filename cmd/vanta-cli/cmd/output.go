package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatText format = iota
	formatJSON
	formatYAML
)

func parseFormat(s string) (format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return formatText, nil
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	default:
		return formatText, fmt.Errorf("invalid output format %q (expected text, json or yaml)", s)
	}
}

// printResult writes v in the selected format. Text output is produced by
// text, structured output by encoding v.
func printResult(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	f, err := parseFormat(outputFlag)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), f, v, text)
}

func writeResult(w io.Writer, f format, v any, text func(w io.Writer)) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}
