package mcp

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/muddatlabs/muddat/internal/extract"
	"github.com/muddatlabs/muddat/internal/feedback"
	"github.com/muddatlabs/muddat/internal/lexicon"
)

func TestNewServer(t *testing.T) {
	s := NewServer(ServerConfig{
		Engine:   extract.NewEngine(lexicon.Default()),
		Feedback: feedback.New(),
		Version:  "test",
	})
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestDeadlinesResultShape(t *testing.T) {
	res, err := deadlinesResult(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("content length = %d, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T, want TextContent", res.Content[0])
	}
	if !strings.Contains(text.Text, `"count": 0`) {
		t.Errorf("payload missing zero count: %s", text.Text)
	}
	if !strings.Contains(text.Text, `"deadlines": []`) {
		t.Errorf("payload missing empty deadlines array: %s", text.Text)
	}
}
