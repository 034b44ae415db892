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

// RegisterWriteTools adds the mutating workspace tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, sess *Session) {
	s.AddTool(createProjectTool(), sess.handler("create_project", createProjectHandler))
	s.AddTool(addNoteTool(), sess.handler("add_note", addNoteHandler))
	s.AddTool(deleteNoteTool(), sess.handler("delete_note", deleteNoteHandler))
	s.AddTool(addMoodTool(), sess.handler("add_mood", addMoodHandler))
	s.AddTool(generateSuggestionsTool(), sess.handler("generate_suggestions", generateSuggestionsHandler))
	s.AddTool(promoteSuggestionTool(), sess.handler("promote_suggestion", promoteSuggestionHandler))
	s.AddTool(togglePlayTool(), sess.handler("toggle_play", togglePlayHandler))
	s.AddTool(toggleLikeTool(), sess.handler("toggle_like", toggleLikeHandler))
	s.AddTool(setVolumeTool(), sess.handler("set_volume", setVolumeHandler))
	s.AddTool(setProgressTool(), sess.handler("set_progress", setProgressHandler))
}

// --- create_project ---

func createProjectTool() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription("Create a music project. It is appended to the catalog with no tracks."),
		mcp.WithString("name",
			mcp.Description("Project name. Required unless suggest_name is true."),
		),
		mcp.WithString("description",
			mcp.Description("Short description"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated genre tags, case-insensitive, from: "+strings.Join(domain.GenreTags, ", ")),
		),
		mcp.WithString("cover_url",
			mcp.Description("Cover image URI"),
		),
		mcp.WithBoolean("suggest_name",
			mcp.Description("Replace the name with a generated one"),
		),
	)
}

func createProjectHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewCreateProjectCommand(ws,
		req.GetString("name", ""),
		req.GetString("description", ""),
		splitList(req.GetString("tags", "")),
	)
	cmd.CoverURL = req.GetString("cover_url", "")
	cmd.SuggestName = req.GetBool("suggest_name", false)

	res, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (id %s)", res.Message, res.Project.ID)), nil
}

// splitList parses a comma-separated argument, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// --- add_note ---

func addNoteTool() mcp.Tool {
	return mcp.NewTool("add_note",
		mcp.WithDescription("Add a note to a project's vision board."),
		projectIDOption(),
		mcp.WithString("type",
			mcp.Description("Note type"),
			mcp.Enum("note", "idea", "reference", "mood"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Note text"),
			mcp.Required(),
		),
	)
}

func addNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewAddNoteCommand(ws,
		req.GetString("project_id", ""),
		req.GetString("type", ""),
		req.GetString("content", ""),
	).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (note %s)", res.Message, res.Note.ID)), nil
}

// --- delete_note ---

func deleteNoteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note from a vision board."),
		projectIDOption(),
		mcp.WithString("note_id",
			mcp.Description("Note ID as shown by list_notes"),
			mcp.Required(),
		),
	)
}

func deleteNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewDeleteNoteCommand(ws,
		req.GetString("project_id", ""),
		req.GetString("note_id", ""),
	).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(res.Message), nil
}

// --- add_mood ---

func addMoodTool() mcp.Tool {
	return mcp.NewTool("add_mood",
		mcp.WithDescription("Add a mood note from the mood vocabulary."),
		projectIDOption(),
		mcp.WithString("mood",
			mcp.Description("Mood word"),
			mcp.Enum(domain.MoodVocabulary...),
			mcp.Required(),
		),
	)
}

func addMoodHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewAddMoodCommand(ws,
		req.GetString("project_id", ""),
		req.GetString("mood", ""),
	).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(res.Message), nil
}

// --- generate_suggestions ---

func generateSuggestionsTool() mcp.Tool {
	return mcp.NewTool("generate_suggestions",
		mcp.WithDescription("Replace a board's pending suggestions with fresh production ideas."),
		projectIDOption(),
	)
}

func generateSuggestionsHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewGenerateSuggestionsCommand(ws, req.GetString("project_id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(res.Suggestions, func(s string) string { return "- " + s })
}

// --- promote_suggestion ---

func promoteSuggestionTool() mcp.Tool {
	return mcp.NewTool("promote_suggestion",
		mcp.WithDescription("Turn a pending suggestion into an idea note. The text must match exactly."),
		projectIDOption(),
		mcp.WithString("suggestion",
			mcp.Description("Suggestion text as shown by list_suggestions"),
			mcp.Required(),
		),
	)
}

func promoteSuggestionHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := commands.NewPromoteSuggestionCommand(ws,
		req.GetString("project_id", ""),
		req.GetString("suggestion", ""),
	).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (note %s)", res.Message, res.Note.ID)), nil
}

// --- player ---

func togglePlayTool() mcp.Tool {
	return mcp.NewTool("toggle_play",
		mcp.WithDescription("Toggle between playing and paused."),
	)
}

func togglePlayHandler(ctx context.Context, ws *application.Workspace, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewPlayerCommand(ws)
	cmd.TogglePlay = true
	return runPlayer(ctx, cmd)
}

func toggleLikeTool() mcp.Tool {
	return mcp.NewTool("toggle_like",
		mcp.WithDescription("Like or unlike the current track."),
	)
}

func toggleLikeHandler(ctx context.Context, ws *application.Workspace, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewPlayerCommand(ws)
	cmd.ToggleLike = true
	return runPlayer(ctx, cmd)
}

func percentOption(name, desc string) mcp.ToolOption {
	return mcp.WithNumber(name,
		mcp.Description(desc),
		mcp.Min(0),
		mcp.Max(100),
		mcp.Required(),
	)
}

func setVolumeTool() mcp.Tool {
	return mcp.NewTool("set_volume",
		mcp.WithDescription("Set the player volume."),
		percentOption("percent", "Volume, 0 to 100"),
	)
}

func setVolumeHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	percent, err := req.RequireInt("percent")
	if err != nil {
		return toolError(err)
	}
	cmd := commands.NewPlayerCommand(ws)
	cmd.Volume = &percent
	return runPlayer(ctx, cmd)
}

func setProgressTool() mcp.Tool {
	return mcp.NewTool("set_progress",
		mcp.WithDescription("Seek the current track."),
		percentOption("percent", "Position, 0 to 100"),
	)
}

func setProgressHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	percent, err := req.RequireInt("percent")
	if err != nil {
		return toolError(err)
	}
	cmd := commands.NewPlayerCommand(ws)
	cmd.Progress = &percent
	return runPlayer(ctx, cmd)
}

func runPlayer(ctx context.Context, cmd *commands.PlayerCommand) (*mcp.CallToolResult, error) {
	res, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(res.Message), nil
}
