// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders concise summaries of tool calls and results.
package display

import (
	"strings"

	"github.com/jeranaias/glimpse/internal/config"
	"github.com/jeranaias/glimpse/internal/util"
)

// =============================================================================
// FILE OPERATIONS
// =============================================================================

// renderFileOp renders read_file and write_file events.
func renderFileOp(ctx *Context, cfg *config.Display) *Summary {
	path := util.Truncate(ctx.InputString("file_path"), cfg.MaxParamLen)

	if ctx.Phase == PhaseCall {
		if ctx.ToolName == "write_file" {
			return &Summary{Text: path, Status: StatusWritePreview}
		}
		return &Summary{Text: path}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	switch ctx.ToolName {
	case "read_file":
		lines, ok := getInt(r, "lines_read")
		if !ok {
			lines, ok = getInt(r, "total_lines")
		}
		if ok && lines > 0 {
			return &Summary{Text: util.FormatCount(lines, "line", "")}
		}
	case "write_file":
		bytes, ok := getInt(r, "bytes_written")
		if !ok {
			bytes, ok = getInt(r, "bytes")
		}
		if ok && bytes > 0 {
			return &Summary{Text: util.FormatThousands(bytes) + " bytes"}
		}
	}

	return nil
}

// renderEditFile renders edit_file events; the call phase requests a
// diff preview below the call line.
func renderEditFile(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		path := util.Truncate(ctx.InputString("file_path"), cfg.MaxParamLen)
		return &Summary{Text: path, Status: StatusDiff}
	}

	if r := ctx.ResultMap(); r != nil {
		n, ok := getInt(r, "replacements_made")
		if !ok {
			n = 1
		}
		return &Summary{Text: util.FormatCount(n, "edit", "")}
	}
	return nil
}

// =============================================================================
// SEARCH
// =============================================================================

// renderSearch renders grep and glob events.
func renderSearch(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		param := ctx.InputString("pattern")
		if path := ctx.InputString("path"); path != "" {
			param += " in " + path
		}
		return &Summary{Text: util.Truncate(param, cfg.MaxParamLen)}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	switch ctx.ToolName {
	case "grep":
		matches, ok := getInt(r, "total_matches")
		if !ok {
			matches, _ = getInt(r, "matches_count")
		}
		return &Summary{Text: util.FormatCount(matches, "match", "matches")}
	case "glob":
		total, ok := getInt(r, "total_files")
		if !ok {
			if files, isList := r["files"].([]any); isList {
				total = len(files)
			}
		}
		return &Summary{Text: util.FormatCount(total, "file", "")}
	}

	return nil
}

// =============================================================================
// EXECUTION
// =============================================================================

// bashResultLines is the cap on stdout lines shown for a succeeded command.
const bashResultLines = 3

// renderBash renders bash execution events.
func renderBash(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		return &Summary{Text: util.Truncate(ctx.InputString("command"), cfg.MaxParamLen)}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	rc, _ := getInt(r, "returncode")
	stdout := getString(r, "stdout")
	stderr := getString(r, "stderr")

	if rc != 0 {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = strings.TrimSpace(stdout)
		}
		if msg == "" {
			msg = "failed"
		}
		first, _ := util.FirstLine(msg, cfg.MaxResultLen-10)
		return &Summary{Text: "exit " + util.IntToString(rc) + ": " + first, Status: StatusFail}
	}

	output := strings.TrimSpace(stdout)
	if output == "" {
		return &Summary{Text: "(no output)"}
	}

	lines := strings.Split(output, "\n")
	shown := lines
	if len(shown) > bashResultLines {
		shown = shown[:bashResultLines]
	}

	truncated := make([]string, len(shown))
	for i, line := range shown {
		truncated[i] = util.Truncate(line, cfg.MaxResultLen)
	}

	// Continuation lines are indented under the result icon.
	text := strings.Join(truncated, "\n  ")
	if remaining := len(lines) - bashResultLines; remaining > 0 {
		text += "\n  (+" + util.IntToString(remaining) + " more)"
	}
	return &Summary{Text: text}
}

// renderPythonCheck renders python_check lint/type-check events.
func renderPythonCheck(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		paths, _ := ctx.Input["paths"].([]any)
		switch {
		case len(paths) == 1:
			if p, ok := paths[0].(string); ok {
				return &Summary{Text: util.Truncate(p, cfg.MaxParamLen)}
			}
			return nil
		case len(paths) > 1:
			return &Summary{Text: util.FormatCount(len(paths), "path", "")}
		default:
			return nil
		}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	files, _ := getInt(r, "files_checked")
	errors, _ := getInt(r, "error_count")
	warnings, _ := getInt(r, "warning_count")
	filesPart := " (" + util.FormatCount(files, "file", "") + ")"

	switch {
	case errors > 0:
		return &Summary{
			Text:   util.IntToString(errors) + " errors, " + util.IntToString(warnings) + " warnings" + filesPart,
			Status: StatusFail,
		}
	case warnings > 0:
		return &Summary{
			Text:   util.IntToString(warnings) + " warnings" + filesPart,
			Status: StatusWarn,
		}
	default:
		return &Summary{Text: "clean" + filesPart}
	}
}

// =============================================================================
// TASK MANAGEMENT
// =============================================================================

// renderTodo renders todo list events.
func renderTodo(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		if action := ctx.InputString("action"); action != "" {
			return &Summary{Text: action}
		}
		return nil
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	count, _ := getInt(r, "count")
	completed, _ := getInt(r, "completed")
	inProgress, _ := getInt(r, "in_progress")
	pending, _ := getInt(r, "pending")

	if count == completed {
		c := util.IntToString(count)
		return &Summary{Text: c + "/" + c + " done"}
	}

	var parts []string
	if inProgress > 0 {
		parts = append(parts, util.IntToString(inProgress)+" active")
	}
	if pending > 0 {
		parts = append(parts, util.IntToString(pending)+" pending")
	}
	if completed > 0 {
		parts = append(parts, util.IntToString(completed)+" done")
	}
	return &Summary{Text: util.IntToString(count) + " (" + strings.Join(parts, ", ") + ")"}
}

// renderTask renders agent delegation events.
func renderTask(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		agent := ctx.InputString("agent")
		instruction := ctx.InputString("instruction")
		if agent != "" {
			short := util.Truncate(instruction, cfg.MaxParamLen-len(agent)-2)
			return &Summary{Text: agent + ": " + short}
		}
		return &Summary{Text: util.Truncate(instruction, cfg.MaxParamLen)}
	}

	if r := ctx.ResultMap(); r != nil {
		if response := getString(r, "response"); response != "" {
			first, remaining := util.FirstLine(response, cfg.MaxResultLen)
			if remaining > 0 {
				return &Summary{Text: first + " (+" + util.IntToString(remaining) + ")"}
			}
			return &Summary{Text: first}
		}
	}
	return &Summary{Text: "done"}
}

// =============================================================================
// WEB
// =============================================================================

// renderWeb renders web_fetch and web_search events.
func renderWeb(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		if ctx.ToolName == "web_fetch" {
			return &Summary{Text: util.Truncate(ctx.InputString("url"), cfg.MaxParamLen)}
		}
		query := util.Truncate(ctx.InputString("query"), cfg.MaxParamLen-2)
		return &Summary{Text: `"` + query + `"`}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	if ctx.ToolName == "web_fetch" {
		status, ok := getInt(r, "status_code")
		if !ok {
			status, ok = getInt(r, "status")
		}
		if ok {
			content := getString(r, "content")
			return &Summary{
				Text: "[" + util.IntToString(status) + "] " + util.FormatThousands(len(content)) + " chars",
			}
		}
		return nil
	}

	results, _ := r["results"].([]any)
	return &Summary{Text: util.FormatCount(len(results), "result", "")}
}

// =============================================================================
// RECIPES
// =============================================================================

// renderRecipes renders recipe operations.
func renderRecipes(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		op := ctx.InputString("operation")
		recipe := ctx.InputString("recipe_path")
		sessionID := ctx.InputString("session_id")

		switch {
		case recipe != "":
			return &Summary{Text: op + " " + util.Truncate(recipe, cfg.MaxParamLen-len(op)-1)}
		case sessionID != "":
			return &Summary{Text: op + " " + shortID(sessionID)}
		default:
			return &Summary{Text: op}
		}
	}

	if r := ctx.ResultMap(); r != nil {
		status := getString(r, "status")
		sessionID := getString(r, "session_id")
		switch {
		case status != "" && sessionID != "":
			return &Summary{Text: status + " (" + shortID(sessionID) + ")"}
		case status != "":
			return &Summary{Text: status}
		}
	}
	return nil
}

// =============================================================================
// SHADOW ENVIRONMENTS
// =============================================================================

// renderShadow renders shadow environment operations.
func renderShadow(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		op := ctx.InputString("operation")
		shadowID := ctx.InputString("shadow_id")
		cmd := ctx.InputString("command")

		switch {
		case cmd != "":
			return &Summary{Text: op + ": " + util.Truncate(cmd, cfg.MaxParamLen-len(op)-2)}
		case shadowID != "":
			return &Summary{Text: op + " " + shadowID}
		default:
			return &Summary{Text: op}
		}
	}

	r := ctx.ResultMap()
	if r == nil {
		return nil
	}

	shadowID := getString(r, "shadow_id")
	stdout := getString(r, "stdout")

	if exitCode, ok := getInt(r, "exit_code"); ok {
		if exitCode != 0 {
			msg := getString(r, "stderr")
			if msg == "" {
				msg = stdout
			}
			first, _ := util.FirstLine(msg, 40)
			return &Summary{Text: "exit " + util.IntToString(exitCode) + ": " + first, Status: StatusFail}
		}
		if stdout != "" {
			first, remaining := util.FirstLine(stdout, cfg.MaxResultLen)
			if remaining > 0 {
				return &Summary{Text: first + " (+" + util.IntToString(remaining) + ")"}
			}
			return &Summary{Text: first}
		}
		return &Summary{Text: "(no output)"}
	}

	if shadowID != "" {
		return &Summary{Text: shadowID}
	}
	return nil
}

// =============================================================================
// SKILLS
// =============================================================================

// renderLoadSkill renders skill loading events.
func renderLoadSkill(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		if skill := ctx.InputString("skill_name"); skill != "" {
			return &Summary{Text: skill}
		}
		if ctx.InputBool("list") {
			return &Summary{Text: "list"}
		}
		if search := ctx.InputString("search"); search != "" {
			return &Summary{Text: `search "` + search + `"`}
		}
		if info := ctx.InputString("info"); info != "" {
			return &Summary{Text: `info "` + info + `"`}
		}
		return nil
	}

	if r := ctx.ResultMap(); r != nil {
		if skills, ok := r["skills"].([]any); ok {
			return &Summary{Text: util.FormatCount(len(skills), "skill", "")}
		}
	}
	return &Summary{Text: "loaded"}
}

// =============================================================================
// GENERIC FALLBACK
// =============================================================================

// genericParamKeys are the well-known input fields scanned by the
// fallback renderer, in preference order.
var genericParamKeys = []string{
	"file_path", "path", "pattern", "command", "query", "url", "instruction",
}

// renderGeneric is the fallback for tools without a dedicated renderer.
func renderGeneric(ctx *Context, cfg *config.Display) *Summary {
	if ctx.Phase == PhaseCall {
		for _, key := range genericParamKeys {
			if v, ok := ctx.Input[key].(string); ok {
				return &Summary{Text: util.Truncate(v, cfg.MaxParamLen)}
			}
		}
		return nil
	}

	switch r := ctx.Result.(type) {
	case string:
		first, remaining := util.FirstLine(r, cfg.MaxResultLen)
		if remaining > 0 {
			return &Summary{Text: first + " (+" + util.IntToString(remaining) + ")"}
		}
		return &Summary{Text: first}
	case map[string]any:
		if errVal, ok := r["error"]; ok {
			if msg, isStr := errVal.(string); isStr {
				return &Summary{Text: util.Truncate(msg, cfg.MaxResultLen), Status: StatusFail}
			}
		}
		if count, ok := getInt(r, "count"); ok {
			return &Summary{Text: util.IntToString(count) + " items"}
		}
	}
	return nil
}

// shortID abbreviates a session or recipe id to its first 12 characters.
func shortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12] + util.Ellipsis
}
