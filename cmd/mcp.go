package cmd

import (
	"context"
	"fmt"
	"strings"

	"vaultfind/internal/candidate"
	"vaultfind/internal/index"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// mcpWidth stands in for the viewport when there is no terminal; wide
// enough that annotations stay readable in client output.
const mcpWidth = 120

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing the file index",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	s := mcpserver.NewMCPServer("vaultfind", "1.0.0", mcpserver.WithToolCapabilities(false))

	s.AddTool(refreshIndexTool(), makeRefreshHandler(st))
	s.AddTool(findFilesTool(), makeFindHandler(st))
	s.AddTool(listIndexedFilesTool(), makeListHandler(st))
	s.AddTool(getFileInfoTool(), makeFileInfoHandler(st))

	return mcpserver.ServeStdio(s)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// --- Tool schema builders ---

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

func refreshIndexTool() mcp.Tool {
	return mcp.NewTool("refresh_index",
		mcp.WithDescription("Re-scan every configured source directory and rebuild the in-memory file index."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
	)
}

func findFilesTool() mcp.Tool {
	return mcp.NewTool("find_files",
		mcp.WithDescription("Find indexed files whose name, source alias or relative path contains the query (case-insensitive). Ranking is up to the caller."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Substring to look for in the file's search key"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of matches to return (default 20)"),
		),
	)
}

func listIndexedFilesTool() mcp.Tool {
	return mcp.NewTool("list_indexed_files",
		mcp.WithDescription("List every indexed file with its source alias, size, modification time and relative path."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("alias",
			mcp.Description("Optional source alias filter. Case-insensitive."),
		),
	)
}

func getFileInfoTool() mcp.Tool {
	return mcp.NewTool("get_file_info",
		mcp.WithDescription("Get name, owning source, relative directory, size and modification time for one indexed file."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path as returned by find_files or list_indexed_files"),
		),
	)
}

// --- Handler factories ---

func makeRefreshHandler(st *index.Store) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats := st.Refresh()
		return mcp.NewToolResultText(fmt.Sprintf("Indexed %d files (%s scan).", stats.Files, stats.Strategy)), nil
	}
}

func makeFindHandler(st *index.Store) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.ToLower(req.GetString("query", ""))
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}
		limit := req.GetInt("limit", 20)
		if limit <= 0 {
			limit = 20
		}

		var sb strings.Builder
		matches := 0
		for _, c := range candidate.Build(st, mcpWidth, true) {
			if !strings.Contains(strings.ToLower(c.SearchKey), query) {
				continue
			}
			matches++
			if matches <= limit {
				fmt.Fprintf(&sb, "- `%s` — %s\n", c.Path, strings.TrimSpace(c.Annotation))
			}
		}

		if matches == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No indexed files match %q.", query)), nil
		}
		header := fmt.Sprintf("## Matches for %q (%d", query, matches)
		if matches > limit {
			header += fmt.Sprintf(", showing %d", limit)
		}
		header += ")\n\n"
		return mcp.NewToolResultText(header + sb.String()), nil
	}
}

func makeListHandler(st *index.Store) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		aliasFilter := strings.ToLower(req.GetString("alias", ""))

		var filtered []candidate.Row
		for _, r := range candidate.Rows(st, mcpWidth) {
			if aliasFilter == "" || strings.ToLower(strings.TrimSpace(r.Alias)) == aliasFilter {
				filtered = append(filtered, r)
			}
		}

		var sb strings.Builder
		if aliasFilter != "" {
			fmt.Fprintf(&sb, "## Indexed files (%d, source: %s)\n\n", len(filtered), aliasFilter)
		} else {
			fmt.Fprintf(&sb, "## Indexed files (%d)\n\n", len(filtered))
		}
		for _, r := range filtered {
			fmt.Fprintf(&sb, "%s %s %s %s %s\n", r.Name, r.Alias, r.Size, r.Date, r.RelDir)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}

func makeFileInfoHandler(st *index.Store) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return mcp.NewToolResultError("path is required"), nil
		}

		e, ok := index.Stat(path, st.Sources())
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("No info for %q — the file may have been removed.", path)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"## %s\n\n**Source:** %s  \n**Directory:** %s  \n**Size:** %s (%d bytes)  \n**Modified:** %s",
			e.Name, e.Alias, e.RelDir, e.SizeDisplay, e.Size, e.Modified)), nil
	}
}
