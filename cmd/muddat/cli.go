package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/muddatlabs/muddat/internal/config"
	"github.com/muddatlabs/muddat/internal/extract"
	"github.com/muddatlabs/muddat/internal/feedback"
	"github.com/muddatlabs/muddat/internal/lexicon"
	"github.com/muddatlabs/muddat/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "muddat",
		Usage:   "Deadline extraction for English and Romanized Urdu chat text",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to config file (default ~/.muddat/config.yaml)"},
			&cli.StringFlag{Name: "data", Usage: "Data directory for feedback persistence"},
			&cli.StringFlag{Name: "sender", Usage: "Default sender name"},
		},
		Commands: []*cli.Command{
			extractCmd(),
			messageCmd(),
			conversationCmd(),
			recipientCmd(),
			feedbackCmd(),
			configCmd(),
			serveCmd(),
		},
	}
}

func resolveConfig(c *cli.Context) (config.ResolvedConfig, error) {
	return config.ResolveConfig(config.ResolveOptions{
		ConfigPath: c.String("config"),
		CLIDataDir: c.String("data"),
		CLISender:  c.String("sender"),
	})
}

func newEngine() *extract.Engine {
	return extract.NewEngine(lexicon.Default())
}

// extractCmd scans bare text or a JSON message for deadlines.
func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract deadlines from text (argument or stdin)",
		ArgsUsage: "[text]",
		Action: func(c *cli.Context) error {
			text, err := argOrStdin(c)
			if err != nil {
				return err
			}
			deadlines := newEngine().ExtractRaw(text)
			return outputDeadlines(deadlines)
		},
	}
}

// messageCmd scans one structured message.
func messageCmd() *cli.Command {
	return &cli.Command{
		Name:      "message",
		Usage:     "Extract deadlines from a structured message",
		ArgsUsage: "[content]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Sender name"},
			&cli.StringFlag{Name: "at", Usage: "Message timestamp"},
		},
		Action: func(c *cli.Context) error {
			content, err := argOrStdin(c)
			if err != nil {
				return err
			}

			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}
			sender := c.String("from")
			if sender == "" {
				sender = cfg.Sender.Value
			}

			deadlines := newEngine().ExtractMessage(extract.Message{
				SenderName: sender,
				Content:    content,
				TimeStamp:  c.String("at"),
			})
			return outputDeadlines(deadlines)
		},
	}
}

// conversationCmd reads a JSON message array from stdin.
func conversationCmd() *cli.Command {
	return &cli.Command{
		Name:  "conversation",
		Usage: "Extract deadlines from a conversation (JSON message array on stdin)",
		Action: func(c *cli.Context) error {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			var messages []extract.Message
			if err := json.Unmarshal(raw, &messages); err != nil {
				return fmt.Errorf("parsing messages: %w", err)
			}

			deadlines := newEngine().ExtractConversation(messages)
			return outputDeadlines(deadlines)
		},
	}
}

// recipientCmd runs recipient detection alone.
func recipientCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipient",
		Usage:     "Guess who a message is directed to",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Sender name, excluded from candidates"},
			&cli.StringSliceFlag{Name: "history", Usage: "Prior message content (repeatable, oldest first)"},
		},
		Action: func(c *cli.Context) error {
			text, err := argOrStdin(c)
			if err != nil {
				return err
			}
			recipient := newEngine().DetectRecipient(text, c.String("from"), c.StringSlice("history"))
			return outputJSON(map[string]string{"recipient": recipient})
		},
	}
}

// feedbackCmd records a corrected recipient.
func feedbackCmd() *cli.Command {
	return &cli.Command{
		Name:  "feedback",
		Usage: "Record a corrected recipient for a message",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "Sender of the original message"},
			&cli.StringFlag{Name: "content", Required: true, Usage: "Original message content"},
			&cli.StringFlag{Name: "recipient", Required: true, Usage: "The correct recipient"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}
			dataDir := cfg.DataDir.Value
			if dataDir == "" {
				dataDir = config.DefaultDataDir()
			}

			fb, err := feedback.Open(dataDir)
			if err != nil {
				return err
			}
			defer fb.Close()

			if err := fb.Record(c.Context, c.String("from"), c.String("content"), c.String("recipient")); err != nil {
				return err
			}
			return outputJSON(map[string]interface{}{
				"recorded": true,
				"total":    fb.Len(),
			})
		},
	}
}

// configCmd prints the resolved configuration with provenance.
func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show resolved configuration and where each value came from",
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}
			return outputJSON(cfg)
		},
	}
}

// serveCmd runs the MCP server over stdio.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run as an MCP server on stdio",
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}

			fb := feedback.New()
			if cfg.DataDir.Value != "" {
				fb, err = feedback.Open(cfg.DataDir.Value)
				if err != nil {
					return err
				}
				defer fb.Close()
			}

			s := mcp.NewServer(mcp.ServerConfig{
				Engine:   newEngine(),
				Feedback: fb,
				Version:  Version,
			})
			return server.ServeStdio(s)
		},
	}
}

func argOrStdin(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", fmt.Errorf("no input text (pass an argument or pipe stdin)")
	}
	return text, nil
}

func outputDeadlines(deadlines []extract.Deadline) error {
	if deadlines == nil {
		deadlines = []extract.Deadline{}
	}
	return outputJSON(map[string]interface{}{
		"deadlines": deadlines,
		"count":     len(deadlines),
	})
}

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
