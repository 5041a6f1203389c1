package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/absurdtty/ttymood/internal/config"
)

// testSetup creates a config pointing at temp files, plus a small zsh
// history to analyze.
func testSetup(t *testing.T) (*config.Config, string) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.MoodFile = filepath.Join(t.TempDir(), "mood.json")

	now := time.Now()
	var b strings.Builder
	for i := 0; i < 20; i++ {
		ts := now.Add(-time.Duration(20-i) * time.Minute)
		fmt.Fprintf(&b, ": %d:0;git status\n", ts.Unix())
	}
	histPath := filepath.Join(t.TempDir(), "zsh_history")
	if err := os.WriteFile(histPath, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return cfg, histPath
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	if code, _ := errorObj["code"].(string); code != expectedCode {
		t.Errorf("got error code %q, want %q", code, expectedCode)
	}
}

func resultPayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("content is not TextContent")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	return payload
}

func TestHandleGenerate(t *testing.T) {
	cfg, histPath := testSetup(t)
	h := NewHandlers(cfg)
	ctx := context.Background()

	result, err := h.HandleGenerate(ctx, makeRequest(map[string]any{
		"history_path": histPath,
		"shell":        "zsh",
		"seed":         float64(42),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error result")
	}

	payload := resultPayload(t, result)
	if written, _ := payload["written"].(bool); !written {
		t.Error("written = false")
	}
	doc, ok := payload["document"].(map[string]any)
	if !ok {
		t.Fatal("no document in payload")
	}
	if schema, _ := doc["schema"].(string); !strings.HasPrefix(schema, "absurdtty.mood.v") {
		t.Errorf("schema = %q", schema)
	}
	if _, err := os.Stat(cfg.MoodFile); err != nil {
		t.Errorf("mood file not written: %v", err)
	}
}

func TestHandleGenerateBadRange(t *testing.T) {
	cfg, histPath := testSetup(t)
	h := NewHandlers(cfg)

	result, err := h.HandleGenerate(context.Background(), makeRequest(map[string]any{
		"history_path": histPath,
		"shell":        "zsh",
		"range":        "whenever",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleStatus(t *testing.T) {
	cfg, histPath := testSetup(t)
	h := NewHandlers(cfg)
	ctx := context.Background()

	// Nothing generated yet
	result, err := h.HandleStatus(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected not-found before generation")
	}
	assertErrorCode(t, result, "NOT_FOUND")

	if result, _ = h.HandleGenerate(ctx, makeRequest(map[string]any{
		"history_path": histPath,
		"shell":        "zsh",
	})); result.IsError {
		t.Fatal("generate failed")
	}

	result, err = h.HandleStatus(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success after generation")
	}
	payload := resultPayload(t, result)
	if _, ok := payload["document"]; !ok {
		t.Error("no document in payload")
	}
}

func TestHandleSignals(t *testing.T) {
	cfg, histPath := testSetup(t)
	h := NewHandlers(cfg)

	result, err := h.HandleSignals(context.Background(), makeRequest(map[string]any{
		"history_path": histPath,
		"shell":        "zsh",
		"all":          true,
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success")
	}
	payload := resultPayload(t, result)
	if entries, _ := payload["entries"].(float64); entries != 20 {
		t.Errorf("entries = %v", payload["entries"])
	}
}

func TestHandleRender(t *testing.T) {
	cfg, _ := testSetup(t)
	h := NewHandlers(cfg)
	ctx := context.Background()

	// Missing kind
	result, err := h.HandleRender(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error for missing kind")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")

	// Neutral render with no signature
	result, err = h.HandleRender(ctx, makeRequest(map[string]any{"kind": "status"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success")
	}
	payload := resultPayload(t, result)
	if neutral, _ := payload["neutral"].(bool); !neutral {
		t.Error("neutral = false with no signature")
	}
	if text, _ := payload["text"].(string); text != "System operational.\n" {
		t.Errorf("text = %q", payload["text"])
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"mood_generate", "mood_weather"})
	if len(unknown) != 1 || unknown[0] != "mood_weather" {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestNewServerRespectsDisabledTools(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"mood_generate"}
	if s := NewServer(cfg, "test"); s == nil {
		t.Fatal("NewServer returned nil")
	}
}
