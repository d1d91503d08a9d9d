/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// guide.go implements "protect-mcp guide". Guides are embedded in the
// binary; the same pages are served to MCP clients as resources.

package cmd

import (
	"fmt"
	"strings"

	"github.com/jpl-au/protect-mcp/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the protect-mcp usage guide",
		Long: `Outputs the protect-mcp guide for LLMs and humans.

  protect-mcp guide          # main guide
  protect-mcp guide safety   # classes, confirm and dryRun
  protect-mcp guide config   # configuration`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			w := c.OutOrStdout()
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(w, fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if JSON() {
				return PrintJSON(w, map[string]string{"topic": name, "content": content})
			}
			render(w, content)
			return nil
		},
	}
}
