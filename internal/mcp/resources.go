package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/muddatlabs/muddat/internal/feedback"
)

// recentFeedbackLimit caps the feedback resource payload.
const recentFeedbackLimit = 20

func registerRecentFeedbackResource(s *server.MCPServer, fb *feedback.Store) {
	resource := mcp.NewResource(
		"muddat://feedback/recent",
		"Recent Feedback",
		mcp.WithResourceDescription("The most recently recorded recipient corrections, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		storeMu.Lock()
		defer storeMu.Unlock()

		history := fb.History()
		total := len(history)
		if total > recentFeedbackLimit {
			history = history[total-recentFeedbackLimit:]
		}

		// Newest first.
		recent := make([]feedback.Entry, 0, len(history))
		for i := len(history) - 1; i >= 0; i-- {
			recent = append(recent, history[i])
		}

		payload := map[string]interface{}{
			"feedback": recent,
			"count":    len(recent),
			"total":    total,
		}
		data, _ := json.MarshalIndent(payload, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}
