package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// Request types for each tool

// GenerateRequest represents the arguments for mood_generate.
type GenerateRequest struct {
	Range       string   `json:"range,omitempty"`
	HistoryPath string   `json:"history_path,omitempty"`
	Shell       string   `json:"shell,omitempty"`
	OutPath     string   `json:"out_path,omitempty"`
	Seed        *float64 `json:"seed,omitempty"`
	DryRun      bool     `json:"dry_run,omitempty"`
}

// StatusRequest represents the arguments for mood_status.
type StatusRequest struct {
	Path string `json:"path,omitempty"`
}

// SignalsRequest represents the arguments for mood_signals.
type SignalsRequest struct {
	Range       string `json:"range,omitempty"`
	HistoryPath string `json:"history_path,omitempty"`
	Shell       string `json:"shell,omitempty"`
	All         bool   `json:"all,omitempty"`
}

// RenderRequest represents the arguments for mood_render.
type RenderRequest struct {
	Kind     string   `json:"kind"`
	Path     string   `json:"path,omitempty"`
	Seed     *float64 `json:"seed,omitempty"`
	Dir      string   `json:"dir,omitempty"`
	Args     string   `json:"args,omitempty"`
	Template string   `json:"template,omitempty"`
	Verbose  bool     `json:"verbose,omitempty"`
}

// HandleGenerate runs the analysis pipeline and writes the signature.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Generate(ctx, h.cfg, ops.GenerateInput{
		Range:       input.Range,
		HistoryPath: input.HistoryPath,
		Shell:       input.Shell,
		OutPath:     input.OutPath,
		Seed:        seedFromNumber(input.Seed),
		DryRun:      input.DryRun,
		Now:         time.Now(),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]any{
		"document": result.Doc,
		"path":     result.Path,
		"written":  result.Written,
	})
}

// HandleStatus returns the persisted signature document.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StatusRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Show(ctx, h.cfg, ops.ShowInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]any{
		"document": result.Doc,
		"path":     result.Path,
	})
}

// HandleSignals re-runs extraction and returns raw scores.
func (h *Handlers) HandleSignals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SignalsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Signals(ctx, h.cfg, ops.SignalsInput{
		Range:       input.Range,
		HistoryPath: input.HistoryPath,
		Shell:       input.Shell,
		All:         input.All,
		Now:         time.Now(),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRender produces mood-styled text.
func (h *Handlers) HandleRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RenderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Kind == "" {
		return errorResult(errors.NewInvalidRequest("kind is required")), nil
	}

	result, err := ops.Render(ctx, h.cfg, ops.RenderInput{
		Kind:     input.Kind,
		MoodPath: input.Path,
		Seed:     seedFromNumber(input.Seed),
		Dir:      input.Dir,
		Args:     strings.Fields(input.Args),
		Template: input.Template,
		Verbose:  input.Verbose,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]any{
		"text":    result.Text,
		"neutral": result.Neutral,
	})
}

// seedFromNumber converts a JSON number argument into a seed.
// JSON has no integer type; truncation is fine for a seed.
func seedFromNumber(n *float64) *uint64 {
	if n == nil {
		return nil
	}
	s := uint64(*n)
	return &s
}

// errorResult formats a structured error payload for MCP clients.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if moodErr, ok := err.(*errors.MoodError); ok {
		errorObj := map[string]any{
			"code":    moodErr.Code,
			"message": moodErr.Message,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths
		if moodErr.Code != errors.ErrInternal && moodErr.Details != nil {
			errorObj["details"] = moodErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
