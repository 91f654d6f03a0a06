// Package mcp provides a Model Context Protocol server for Muddat.
//
// It exposes deadline extraction (single text, structured message, whole
// conversation), recipient detection, and recipient-correction feedback
// as MCP tools, plus recent feedback as an MCP resource. Transport is
// stdio, suitable for Claude Desktop and Cursor.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/muddatlabs/muddat/internal/extract"
	"github.com/muddatlabs/muddat/internal/feedback"
)

// ServerConfig holds configuration for the MCP server.
type ServerConfig struct {
	Engine   *extract.Engine
	Feedback *feedback.Store
	Version  string
}

// storeMu serializes tool calls that touch the feedback store's SQLite
// file. The mcp-go library dispatches handlers concurrently via
// goroutines, and SQLite supports only one writer at a time. Extraction
// tools are pure and run unlocked.
var storeMu sync.Mutex

// NewServer creates a configured MCP server with all Muddat tools and
// resources.
func NewServer(cfg ServerConfig) *server.MCPServer {
	ver := cfg.Version
	if ver == "" {
		ver = "dev"
	}

	s := server.NewMCPServer(
		"Muddat",
		ver,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
	)

	registerExtractTool(s, cfg.Engine)
	registerExtractMessageTool(s, cfg.Engine)
	registerExtractConversationTool(s, cfg.Engine)
	registerRecipientTool(s, cfg.Engine)
	registerFeedbackTool(s, cfg.Feedback)
	registerStatsTool(s, cfg.Feedback, ver)

	registerRecentFeedbackResource(s, cfg.Feedback)

	return s
}

// --- Tools ---

func registerExtractTool(s *server.MCPServer, engine *extract.Engine) {
	tool := mcp.NewTool("muddat_extract",
		mcp.WithDescription("Extract deadlines from free text in English or Romanized Urdu. Returns deadline records with parsed dates, confidence scores, and positions. Accepts either bare text or a JSON-encoded message with sender_name/content/time_stamp."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to scan for deadlines (bare text or message JSON)"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError("text is required"), nil
		}

		deadlines := engine.ExtractRaw(text)
		return deadlinesResult(deadlines)
	})
}

func registerExtractMessageTool(s *server.MCPServer, engine *extract.Engine) {
	tool := mcp.NewTool("muddat_extract_message",
		mcp.WithDescription("Extract deadlines from a structured chat message. Each result echoes the sender, timestamp, and content, and includes a recipient guess."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Message text to scan"),
		),
		mcp.WithString("sender_name",
			mcp.Description("Name of the message sender"),
		),
		mcp.WithString("time_stamp",
			mcp.Description("Message timestamp, echoed back on results"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}

		msg := extract.Message{Content: content}
		if v, err := req.RequireString("sender_name"); err == nil {
			msg.SenderName = v
		}
		if v, err := req.RequireString("time_stamp"); err == nil {
			msg.TimeStamp = v
		}

		deadlines := engine.ExtractMessage(msg)
		return deadlinesResult(deadlines)
	})
}

func registerExtractConversationTool(s *server.MCPServer, engine *extract.Engine) {
	tool := mcp.NewTool("muddat_extract_conversation",
		mcp.WithDescription("Extract deadlines from an ordered conversation. Pass messages as a JSON array of {sender_name, content, time_stamp}. Results carry a message_index and recipient guesses informed by prior messages."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("messages",
			mcp.Required(),
			mcp.Description("JSON array of message objects in conversation order"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := req.RequireString("messages")
		if err != nil {
			return mcp.NewToolResultError("messages is required"), nil
		}

		var messages []extract.Message
		if err := json.Unmarshal([]byte(raw), &messages); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid messages JSON: %v", err)), nil
		}

		deadlines := engine.ExtractConversation(messages)
		return deadlinesResult(deadlines)
	})
}

func registerRecipientTool(s *server.MCPServer, engine *extract.Engine) {
	tool := mcp.NewTool("muddat_recipient",
		mcp.WithDescription("Guess who a message is directed to using lexical rules (salutations, possessives, second person, recent history). Returns a name, \"you\", or \"unclear\"."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Message text to analyze"),
		),
		mcp.WithString("sender",
			mcp.Description("Sender name, excluded from candidates"),
		),
		mcp.WithString("history",
			mcp.Description("JSON array of prior message contents, most recent last"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError("text is required"), nil
		}

		sender := ""
		if v, err := req.RequireString("sender"); err == nil {
			sender = v
		}

		var history []string
		if v, err := req.RequireString("history"); err == nil && strings.TrimSpace(v) != "" {
			if err := json.Unmarshal([]byte(v), &history); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid history JSON: %v", err)), nil
			}
		}

		recipient := engine.DetectRecipient(text, sender, history)
		data, _ := json.MarshalIndent(map[string]string{"recipient": recipient}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerFeedbackTool(s *server.MCPServer, fb *feedback.Store) {
	tool := mcp.NewTool("muddat_feedback",
		mcp.WithDescription("Record a corrected recipient for a message whose automatic recipient guess was wrong. Corrections are kept for offline review and do not change extraction behavior."),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("sender",
			mcp.Required(),
			mcp.Description("Sender of the original message"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Original message content"),
		),
		mcp.WithString("corrected_recipient",
			mcp.Required(),
			mcp.Description("The correct recipient"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		storeMu.Lock()
		defer storeMu.Unlock()

		sender, err := req.RequireString("sender")
		if err != nil {
			return mcp.NewToolResultError("sender is required"), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}
		corrected, err := req.RequireString("corrected_recipient")
		if err != nil {
			return mcp.NewToolResultError("corrected_recipient is required"), nil
		}

		if err := fb.Record(ctx, sender, content, corrected); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("recording feedback: %v", err)), nil
		}

		data, _ := json.MarshalIndent(map[string]interface{}{
			"recorded": true,
			"total":    fb.Len(),
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerStatsTool(s *server.MCPServer, fb *feedback.Store, version string) {
	tool := mcp.NewTool("muddat_stats",
		mcp.WithDescription("Report service statistics: version and recorded feedback count."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		storeMu.Lock()
		defer storeMu.Unlock()

		data, _ := json.MarshalIndent(map[string]interface{}{
			"version":        version,
			"feedback_count": fb.Len(),
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

func deadlinesResult(deadlines []extract.Deadline) (*mcp.CallToolResult, error) {
	if deadlines == nil {
		deadlines = []extract.Deadline{}
	}
	payload := map[string]interface{}{
		"deadlines": deadlines,
		"count":     len(deadlines),
	}
	data, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
