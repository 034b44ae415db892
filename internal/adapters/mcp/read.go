package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vanta/internal/application"
	"vanta/internal/application/commands"
	"vanta/internal/domain"
)

// RegisterReadTools adds the read-only workspace tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, sess *Session) {
	s.AddTool(listProjectsTool(), sess.handler("list_projects", listProjectsHandler))
	s.AddTool(searchTool(), sess.handler("search", searchHandler))
	s.AddTool(listNotesTool(), sess.handler("list_notes", listNotesHandler))
	s.AddTool(listSuggestionsTool(), sess.handler("list_suggestions", listSuggestionsHandler))
	s.AddTool(playerStatusTool(), sess.handler("player_status", playerStatusHandler))
}

func projectIDOption() mcp.ToolOption {
	return mcp.WithString("project_id",
		mcp.Description("Project ID (e.g. 1). Omit to use the first project."),
	)
}

// --- list_projects ---

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List music projects. A query keeps projects whose name or description contains it, case-insensitively."),
		mcp.WithString("query",
			mcp.Description("Filter text. Omit to list every project."),
		),
	)
}

func listProjectsHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewListProjectsCommand(ws, req.GetString("query", ""), "").Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(res.Projects, formatProject)
}

func formatProject(p domain.Project) string {
	line := fmt.Sprintf("%s  %s  (%s, %s)", p.ID, p.Name, p.TrackLabel(), p.LastModified)
	if len(p.Tags) > 0 {
		line += "  #" + strings.Join(p.Tags, " #")
	}
	if p.Description != "" {
		line += "\n    " + p.Description
	}
	return line
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search tracks and projects by title or tag."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("all, tracks or projects (default all)"),
			mcp.Enum("all", "tracks", "projects"),
		),
	)
}

func searchHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return toolError(fmt.Errorf("query is required"))
	}

	res, err := commands.NewSearchCommand(ws, query, req.GetString("category", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	if len(res.Results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	sb.WriteString(res.Message)
	sb.WriteString("\n")
	for _, r := range res.Results {
		fmt.Fprintf(&sb, "[%s] %s  %s", r.Kind, r.Title, r.Subtitle())
		if len(r.Tags) > 0 {
			sb.WriteString("  #" + strings.Join(r.Tags, " #"))
		}
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes on a project's vision board."),
		projectIDOption(),
	)
}

func listNotesHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewShowBoardCommand(ws, req.GetString("project_id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(res.Notes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%s has no notes.", res.ProjectName)), nil
	}
	return formatEntities(res.Notes, formatNote)
}

func formatNote(n domain.Note) string {
	return fmt.Sprintf("%s  [%s]  %s", n.ID, n.Type, n.Content)
}

// --- list_suggestions ---

func listSuggestionsTool() mcp.Tool {
	return mcp.NewTool("list_suggestions",
		mcp.WithDescription("List the pending production suggestions of a vision board. Use generate_suggestions to refresh them."),
		projectIDOption(),
	)
}

func listSuggestionsHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewShowBoardCommand(ws, req.GetString("project_id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(res.Suggestions) == 0 {
		return mcp.NewToolResultText("No pending suggestions."), nil
	}
	return formatEntities(res.Suggestions, func(s string) string { return "- " + s })
}

// --- player_status ---

func playerStatusTool() mcp.Tool {
	return mcp.NewTool("player_status",
		mcp.WithDescription("Show the current track and transport state."),
	)
}

func playerStatusHandler(ctx context.Context, ws *application.Workspace, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewPlayerCommand(ws).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(res.Message), nil
}
