/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// tools.go implements "protect-mcp tools", which lists the tools the server
// would install. It applies the same mode filter as serve, so operators can
// check exactly what an LLM will see before connecting one.

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jpl-au/protect-mcp/internal/catalog"
	"github.com/jpl-au/protect-mcp/internal/mcp"
	"github.com/jpl-au/protect-mcp/internal/safety"
	"github.com/spf13/cobra"
)

// toolInfo is the JSON form of one listed tool.
type toolInfo struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Family          string `json:"family"`
	Class           string `json:"class"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Guard           string `json:"guard,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint"`
	DestructiveHint bool   `json:"destructiveHint"`
}

func newToolsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server would install",
		Long: `List the MCP tools the server would install.

Read-only mode is assumed unless --read-write is given.

  protect-mcp tools                        # read-only tool set
  protect-mcp tools --read-write           # every tool
  protect-mcp tools --read-write --class destructive
  protect-mcp tools --family camera -o json`,
		Args: cobra.NoArgs,
		RunE: runTools,
	}
	c.Flags().Bool(FlagReadWrite, false, "List the read-write tool set")
	c.Flags().String(FlagClass, "", "Filter by class: read-only, write, destructive")
	c.Flags().String(FlagFamily, "", "Filter by family: system, camera, device, liveview, file")
	return c
}

func runTools(c *cobra.Command, _ []string) error {
	w := c.OutOrStdout()
	readWrite, _ := c.Flags().GetBool(FlagReadWrite)
	className, _ := c.Flags().GetString(FlagClass)
	familyName, _ := c.Flags().GetString(FlagFamily)

	var class *safety.Class
	if className != "" {
		cl, err := safety.Parse(className)
		if err != nil {
			return PrintJSONError(w, err)
		}
		class = &cl
	}
	var family *catalog.Family
	if familyName != "" {
		f := catalog.Family(familyName)
		if !slices.Contains(catalog.Families, f) {
			return PrintJSONError(w, fmt.Errorf("unknown family %q (valid: system, camera, device, liveview, file)", familyName))
		}
		family = &f
	}

	ops := catalog.Filter(mcp.Installed(catalog.Default(), !readWrite), class, family)

	if JSON() {
		infos := make([]toolInfo, 0, len(ops))
		for _, op := range ops {
			h := op.Class.Hints()
			infos = append(infos, toolInfo{
				Name:            op.Name,
				Title:           op.Title,
				Family:          string(op.Family),
				Class:           op.Class.String(),
				Method:          op.Method,
				Path:            op.Path,
				Guard:           op.Guard(),
				ReadOnlyHint:    h.ReadOnly,
				DestructiveHint: h.Destructive,
			})
		}
		return PrintJSON(w, infos)
	}

	render(w, toolsTable(ops, readWrite))
	return nil
}

func toolsTable(ops []*catalog.Operation, readWrite bool) string {
	mode := "read-only"
	if readWrite {
		mode = "read-write"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Tools (%s mode, %d)\n\n", mode, len(ops))
	b.WriteString("| Name | Class | Method | Path | Guard |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, op := range ops {
		guard := op.Guard()
		if guard == "" {
			guard = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | `%s` | %s |\n", op.Name, op.Class, op.Method, op.Path, guard)
	}
	return b.String()
}
