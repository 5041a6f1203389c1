// Package mcp exposes the mood engine over the Model Context Protocol
// so agents can query the operator's terminal mood.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/absurdtty/ttymood/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"mood_generate": {
		def:     generateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGenerate },
	},
	"mood_status": {
		def:     statusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStatus },
	},
	"mood_signals": {
		def:     signalsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSignals },
	},
	"mood_render": {
		def:     renderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRender },
	},
}

var generateToolDef = mcp.NewTool("mood_generate",
	mcp.WithDescription("Analyze shell history and write a versioned mood signature. History is read-only; commands are reduced to leading tokens before analysis."),
	mcp.WithString("range", mcp.Description("Analysis window: a day count like 7, 7d, or 2w (default: configured range)")),
	mcp.WithString("history_path", mcp.Description("History file path (default: autodetected from the shell)")),
	mcp.WithString("shell", mcp.Description("History format: zsh, bash, fish, or histdb")),
	mcp.WithString("out_path", mcp.Description("Signature output path (default: configured mood file)")),
	mcp.WithNumber("seed", mcp.Description("Pin case ID entropy for reproducible documents")),
	mcp.WithBoolean("dry_run", mcp.Description("Analyze without writing the signature")),
)

var statusToolDef = mcp.NewTool("mood_status",
	mcp.WithDescription("Return the persisted mood signature document."),
	mcp.WithString("path", mcp.Description("Signature path (default: configured mood file)")),
)

var signalsToolDef = mcp.NewTool("mood_signals",
	mcp.WithDescription("Re-run signal extraction over the history window and return raw scores, strongest first."),
	mcp.WithString("range", mcp.Description("Analysis window: a day count like 7, 7d, or 2w")),
	mcp.WithString("history_path", mcp.Description("History file path (default: autodetected)")),
	mcp.WithString("shell", mcp.Description("History format: zsh, bash, fish, or histdb")),
	mcp.WithBoolean("all", mcp.Description("Include signals below the significance threshold")),
)

var renderToolDef = mcp.NewTool("mood_render",
	mcp.WithDescription("Render mood-styled text of the given kind. Falls back to a fixed neutral template when no signature exists."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("One of: status, uptime, ls, explain, doctor, patchnotes, form")),
	mcp.WithString("path", mcp.Description("Signature path (default: configured mood file)")),
	mcp.WithNumber("seed", mcp.Description("Pin output for a given signature")),
	mcp.WithString("dir", mcp.Description("Directory for the ls kind (default: current)")),
	mcp.WithString("args", mcp.Description("Space-separated words for the explain kind")),
	mcp.WithString("template", mcp.Description("Form template: declaration, incident, requisition, or appeal")),
	mcp.WithBoolean("verbose", mcp.Description("More output, not more truth")),
)

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the mood tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"ttymood",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Serve starts the MCP server using stdio transport.
func Serve(cfg *config.Config) error {
	return server.ServeStdio(NewServer(cfg, "dev"))
}
