/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements "protect-mcp config", which shows the effective
// configuration after defaults, the config file and the environment have
// been applied. It is read-only: settings are changed in the environment or
// the file, never by this command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/protect-mcp/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key]",
		Short: "Show effective configuration",
		Long: `Show the effective configuration. The API key is masked.

  protect-mcp config            # show all values
  protect-mcp config read_only  # show one value

Keys: host, api_key, verify_ssl, read_only, timeout, log.level, log.format, log.audit`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runConfig,
	}
}

func runConfig(c *cobra.Command, args []string) error {
	w := c.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return PrintJSONError(w, err)
	}

	if len(args) == 1 {
		v, err := cfg.Get(args[0])
		if err != nil {
			return PrintJSONError(w, err)
		}
		if JSON() {
			return PrintJSON(w, map[string]string{args[0]: v})
		}
		fmt.Fprintln(w, v)
		return nil
	}

	if JSON() {
		return PrintJSON(w, cfg.Redacted())
	}
	if p := cfg.Path(); p != "" {
		fmt.Fprintf(w, "# %s\n", p)
	}
	for _, k := range config.ValidKeys() {
		v, _ := cfg.Get(k)
		fmt.Fprintf(w, "%s: %s\n", k, v)
	}
	return nil
}
