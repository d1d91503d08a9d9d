/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and the output helpers every command
// shares.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/protect-mcp/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validOutputFormats = []string{"json"}

// Flag names.
const (
	FlagOutput    = "output"
	FlagConfig    = "config"
	FlagReadWrite = "read-write"
	FlagClass     = "class"
	FlagFamily    = "family"
)

var (
	output     string
	configPath string
)

func bindFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&output, FlagOutput, "o", "", "Output format: json")
	root.PersistentFlags().StringVar(&configPath, FlagConfig, "", "Config file (default: $"+config.EnvConfig+")")

	_ = root.RegisterFlagCompletionFunc(FlagOutput, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to w.
func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// PrintJSONError prints err as {"error": ...} when JSON output is requested
// and returns it unchanged, so the exit code still reflects the failure.
func PrintJSONError(w io.Writer, err error) error {
	if !JSON() || err == nil {
		return err
	}
	_ = PrintJSON(w, map[string]string{"error": err.Error()})
	return err
}

// loadConfig resolves configuration from --config, the environment and
// defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w\n\nSet %s and %s, or see 'protect-mcp guide config'", err, config.EnvHost, config.EnvAPIKey)
	}
	return cfg, nil
}

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render writes markdown to w, formatted with glamour when w is a terminal
// and raw otherwise so pipes and LLM context loading get plain text.
func render(w io.Writer, markdown string) {
	if isTerminal(w) {
		if rendered, err := glamour.Render(markdown, "dark"); err == nil {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, markdown)
}
