package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"parsefloat/internal/diagfmt"
	"parsefloat/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [FILE|DIR|SUITE.toml]...",
	Short: "Run conformance vector files against the parser",
	Long:  `Check reads vector files (lines of "<f16-hex> <f32-hex> <f64-hex> <literal>"), parses every literal as float32 and float64, and reports each bit mismatch. Directories are walked for *.txt files; a .toml argument is loaded as a suite manifest`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = all cores)")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not update the result cache")
}

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	files, err := expandCheckArgs(args, &jobs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no vector files found")
	}

	cache, err := driver.OpenResultCache("parsefloat")
	if err != nil {
		// без кеша жить можно
		cache = nil
	}

	fileSet, results, err := driver.CheckFiles(cmd.Context(), files, cache, driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		NoCache:        noCache,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	stderrColor := useColor(cmd, os.Stderr)
	stdoutColor := useColor(cmd, os.Stdout)
	totalVectors, totalFailed := 0, 0
	for _, res := range results {
		totalVectors += res.Total
		totalFailed += res.Failed

		if res.Bag != nil && (res.Bag.HasErrors() || res.Bag.HasWarnings()) {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:   stderrColor,
				Context: true,
			})
		}
		if quiet {
			continue
		}
		status := "ok"
		if stdoutColor {
			status = passColor.Sprint("ok")
		}
		if res.Failed > 0 {
			status = fmt.Sprintf("%d failed", res.Failed)
			if stdoutColor {
				status = failColor.Sprint(status)
			}
		}
		suffix := ""
		if res.FromCache {
			suffix = " (cached)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d vectors, %s%s\n", res.Path, res.Total, status, suffix)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "total: %d vectors, %d failed\n", totalVectors, totalFailed)
	}
	if totalFailed > 0 {
		return fmt.Errorf("%d of %d vectors failed", totalFailed, totalVectors)
	}
	return nil
}

// expandCheckArgs раскрывает директории и манифесты в список файлов.
// Jobs из манифеста берётся, только если флаг не задан.
func expandCheckArgs(args []string, jobs *int) ([]string, error) {
	var plain []string
	var files []string
	for _, arg := range args {
		if strings.HasSuffix(arg, ".toml") {
			suite, err := driver.LoadSuite(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, suite.Files...)
			if *jobs == 0 && suite.Jobs > 0 {
				*jobs = suite.Jobs
			}
			continue
		}
		plain = append(plain, arg)
	}
	expanded, err := driver.ExpandArgs(plain)
	if err != nil {
		return nil, err
	}
	return append(files, expanded...), nil
}
