package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/courtlistener-mcp/internal/config"
	mcpserver "github.com/roivaz/courtlistener-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{Use: "tool-call"}

	var tool string
	var rawArgs []string
	var output string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Invoke one MCP tool in-process and print its result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tool == "" {
				return fmt.Errorf("--tool is required")
			}
			arguments, err := parseArgs(rawArgs)
			if err != nil {
				return err
			}

			cfg, err := mcpserver.DefaultConfig()
			if err != nil {
				return err
			}
			adapter, ok := cfg.ToolAdapters[tool]
			if !ok {
				return fmt.Errorf("unknown tool %q", tool)
			}

			req := mcp.CallToolRequest{}
			req.Params.Name = tool
			req.Params.Arguments = arguments
			res, err := adapter.ToolAdapter(context.Background(), req)
			if err != nil {
				return err
			}
			if err := outputResult(res, output); err != nil {
				return err
			}
			if res.IsError {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Tool name, e.g. search_cases")
	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "Tool argument as key=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	root.AddCommand(cmd)

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("tool-call: %v", err)
	}
}

// parseArgs keeps every value a string; the tools accept numeric strings.
func parseArgs(raw []string) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --arg %q, want key=value", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

func outputResult(res *mcp.CallToolResult, format string) error {
	switch format {
	case "text":
		for _, c := range res.Content {
			if text, ok := c.(mcp.TextContent); ok {
				fmt.Println(text.Text)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.StructuredContent)
	case "yaml":
		b, err := yaml.Marshal(res.StructuredContent)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
