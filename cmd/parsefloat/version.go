package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"parsefloat/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Tagline   string `json:"tagline"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

const versionTagline = "every bit accounted for"

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show parsefloat build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(versionFormat)
		switch format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := versionInfo{
			Version:   strings.TrimSpace(version.Version),
			GitCommit: strings.TrimSpace(version.GitCommit),
			BuildDate: strings.TrimSpace(version.BuildDate),
		}
		if info.Version == "" {
			info.Version = "dev"
		}
		if format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info)
		}
		renderVersionPretty(cmd.OutOrStdout(), info)
		return nil
	},
}

func renderVersionPretty(out io.Writer, info versionInfo) {
	fmt.Fprintf(out, "parsefloat %s — %s\n", info.Version, versionTagline)
	if versionShowFull {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, info versionInfo) error {
	payload := versionPayload{
		Tool:    "parsefloat",
		Version: info.Version,
		Tagline: versionTagline,
	}
	if versionShowFull {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
