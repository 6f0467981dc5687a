package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/repomap/internal/config"
	"github.com/dejo1307/repomap/internal/engine"
	"github.com/dejo1307/repomap/internal/report"
)

// LastReportURI is the resource holding the last generated report.
const LastReportURI = "repomap://last"

// Server wraps the MCP server and connects it to the engine.
type Server struct {
	mcp     *mcp.Server
	eng     *engine.Engine
	cfg     *config.Config
	version string
	logger  *slog.Logger
}

// New creates a new MCP server wired to the given engine.
func New(eng *engine.Engine, cfg *config.Config, version string, logger *slog.Logger) (*Server, error) {
	if eng == nil {
		return nil, errors.New("server: engine is required")
	}
	if cfg == nil {
		cfg = eng.Config()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		eng:     eng,
		cfg:     cfg,
		version: version,
		logger:  logger.With("component", "server"),
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "repomap",
		Version: version,
	}, nil)
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds the last-report resource.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         LastReportURI,
		Name:        "Last Repository Map",
		Description: "JSON document produced by the most recent repomap tool call",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		text, err := s.lastReport(ctx)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: text, MIMEType: "application/json"},
			},
		}, nil
	})
}

// registerTools adds the repomap tool.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "repomap",
		Description: "Summarize a repository as one bounded, deterministic JSON document: " +
			"directory tree, ranked top files, a capped symbol index, hotspot files and truncation notes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args repomapArgs) (*mcp.CallToolResult, any, error) {
		return s.repomap(ctx, args), nil, nil
	})
}

func (s *Server) lastReport(ctx context.Context) (string, error) {
	rep := s.eng.Last()
	if rep == nil {
		return "", errors.New("no report available (call the repomap tool first)")
	}
	out, err := s.eng.Render(ctx, "json", rep)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *Server) repomap(ctx context.Context, args repomapArgs) *mcp.CallToolResult {
	if args.RepoRoot == "" {
		return errorResult("repo_root is required")
	}
	cfg, err := args.apply(s.cfg)
	if err != nil {
		return errorResult(err.Error())
	}

	rep, err := s.eng.RunWith(ctx, args.RepoRoot, cfg)
	if err != nil {
		if errors.Is(err, engine.ErrNotDirectory) {
			var buf bytes.Buffer
			if encErr := report.EncodeError(&buf, err); encErr == nil {
				return errorResult(strings.TrimSpace(buf.String()))
			}
		}
		return errorResult(fmt.Sprintf("repomap failed: %v", err))
	}

	format := args.Format
	if format == "" {
		format = "json"
	}
	out, err := s.eng.Render(ctx, format, rep)
	if err != nil {
		return errorResult(err.Error())
	}
	s.logger.Debug("repomap tool served", "root", rep.RepoRoot, "format", format, "bytes", len(out))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
