// Package mcp exposes path extraction as an MCP server, so agent tooling
// can query schemas over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/otabase/asnpath"
	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
	"github.com/otabase/asnpath/pkg/schema"
)

// ExtractResult aligns with the HTTP response schema and provides a unified
// structure across adapters.
type ExtractResult struct {
	Message string         `json:"message" jsonschema_description:"The message type that was walked"`
	Count   int            `json:"count" jsonschema_description:"Number of paths found"`
	Paths   []extract.Path `json:"paths" jsonschema_description:"Every matching path with its choice decisions"`
}

// Extractor defines the interface required by the MCP server.
type Extractor interface {
	Messages(ctx context.Context) ([]string, error)
	Extract(ctx context.Context, message string, targets extract.TargetSet) ([]extract.Path, error)
}

// Server wraps the extraction core and exposes it as an MCP Server.
type Server struct {
	extractor Extractor
	provider  ports.SchemaProvider
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. The provider is used for
// schema introspection and may be the same object the extractor wraps.
func NewServer(extractor Extractor, provider ports.SchemaProvider) *Server {
	s := &Server{
		extractor: extractor,
		provider:  provider,
		mcpServer: server.NewMCPServer("asnpath-mcp", strings.TrimSpace(asnpath.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: extract_paths
	extractTool := mcp.NewTool("extract_paths",
		mcp.WithDescription("Enumerate every root-to-leaf path reaching a target field kind in a message type. Returns field paths with the choice decisions that select them."),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message type name to walk")),
		mcp.WithString("targets", mcp.Description("Comma separated target kinds (bit-string, octet-string, integer, sequence-of). Defaults to all.")),
		mcp.WithOutputSchema[ExtractResult](),
	)
	s.mcpServer.AddTool(extractTool, mcp.NewStructuredToolHandler(s.handleExtract))

	// TOOL: list_messages
	s.mcpServer.AddTool(mcp.NewTool("list_messages",
		mcp.WithDescription("List the message types the loaded schema declares."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		messages, err := s.extractor.Messages(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(messages)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: inspect_schema
	s.mcpServer.AddTool(mcp.NewTool("inspect_schema",
		mcp.WithDescription("Show the structural outline of a message type, with choices, size constraints and embedded contents."),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message type name to outline")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message := request.GetString("message", "")
		root, err := s.provider.Resolve(ctx, message)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("inspect failed: %v", err)), nil
		}
		return mcp.NewToolResultText(schema.Outline(root)), nil
	})
}

func (s *Server) handleExtract(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExtractResult, error) {
	message, _ := args["message"].(string)
	if message == "" {
		return ExtractResult{}, fmt.Errorf("message is required")
	}

	targets := extract.AllTargets()
	if raw, ok := args["targets"].(string); ok && raw != "" {
		names := strings.Split(raw, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		var err error
		targets, err = extract.ParseTargets(names)
		if err != nil {
			return ExtractResult{}, fmt.Errorf("invalid targets: %w", err)
		}
	}

	paths, err := s.extractor.Extract(ctx, message, targets)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("extract failed: %w", err)
	}
	if paths == nil {
		paths = []extract.Path{}
	}

	return ExtractResult{
		Message: message,
		Count:   len(paths),
		Paths:   paths,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: asnpath://messages
	s.mcpServer.AddResource(mcp.NewResource("asnpath://messages", "Declared Message Types",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		messages, err := s.extractor.Messages(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}
		jsonBytes, _ := json.Marshal(messages)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "asnpath://messages",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
