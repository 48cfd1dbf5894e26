package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"parsefloat/internal/floatconv"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] LITERAL...",
	Short: "Parse numeric literals and print their IEEE-754 bits",
	Long:  `Parse converts each literal to the nearest float and prints the value together with its exact bit pattern. A single "-" reads literals from stdin, one per line`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("float32", false, "parse into single precision")
	parseCmd.Flags().Bool("partial", false, "accept trailing bytes, report consumed count")
}

type parseOutput struct {
	Literal  string `json:"literal"`
	Value    string `json:"value"`
	Bits     string `json:"bits"`
	Consumed int    `json:"consumed,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	single, _ := cmd.Flags().GetBool("float32")
	partial, _ := cmd.Flags().GetBool("partial")

	literals, err := collectLiterals(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	failed := false
	var outputs []parseOutput
	for _, lit := range literals {
		out := parseOne(lit, single, partial)
		if out.Error != "" {
			failed = true
		}
		outputs = append(outputs, out)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return err
		}
	default:
		for _, out := range outputs {
			renderParsePretty(cmd.OutOrStdout(), out, partial)
		}
	}
	if failed {
		return fmt.Errorf("some literals failed to parse")
	}
	return nil
}

func parseOne(lit string, single, partial bool) parseOutput {
	out := parseOutput{Literal: lit}
	switch {
	case single && partial:
		v, n, err := floatconv.ParseFloat32Prefix(lit)
		fillOutput32(&out, v, n, err)
	case single:
		v, err := floatconv.ParseFloat32(lit)
		fillOutput32(&out, v, len(lit), err)
	case partial:
		v, n, err := floatconv.ParseFloat64Prefix(lit)
		fillOutput64(&out, v, n, err)
	default:
		v, err := floatconv.ParseFloat64(lit)
		fillOutput64(&out, v, len(lit), err)
	}
	return out
}

func fillOutput64(out *parseOutput, v float64, n int, err error) {
	if err != nil {
		out.Error = err.Error()
		return
	}
	out.Value = fmt.Sprintf("%g", v)
	out.Bits = fmt.Sprintf("0x%016X", math.Float64bits(v))
	out.Consumed = n
}

func fillOutput32(out *parseOutput, v float32, n int, err error) {
	if err != nil {
		out.Error = err.Error()
		return
	}
	out.Value = fmt.Sprintf("%g", v)
	out.Bits = fmt.Sprintf("0x%08X", math.Float32bits(v))
	out.Consumed = n
}

func renderParsePretty(w io.Writer, out parseOutput, partial bool) {
	if out.Error != "" {
		fmt.Fprintf(w, "%s: error: %s\n", out.Literal, out.Error)
		return
	}
	if partial {
		fmt.Fprintf(w, "%s -> %s (%s, consumed %d)\n", out.Literal, out.Value, out.Bits, out.Consumed)
		return
	}
	fmt.Fprintf(w, "%s -> %s (%s)\n", out.Literal, out.Value, out.Bits)
}

// collectLiterals разворачивает "-" в построчное чтение stdin.
func collectLiterals(args []string, stdin io.Reader) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg != "-" {
			out = append(out, arg)
			continue
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			line := sc.Text()
			if line != "" {
				out = append(out, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no literals to parse")
	}
	return out, nil
}
