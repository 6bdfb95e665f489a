package paneltools

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/germanamz/modelpanel/pkg/panel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server exposes a panel's tools over MCP. Every call is logged; failed
// calls are logged at warn level and returned to the client as error
// results.
type Server struct {
	mcp   *mcp.Server
	tools []Tool
	log   zerolog.Logger
}

// NewServer creates a server for p with all panel tools registered.
func NewServer(p *panel.Panel, version string, log zerolog.Logger) *Server {
	s := &Server{
		mcp:   mcp.NewServer(&mcp.Implementation{Name: "modelpanel", Version: version}, nil),
		tools: New(p).All(),
		log:   log.With().Str("component", "mcp").Logger(),
	}

	for _, t := range s.tools {
		s.mcp.AddTool(&mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}, s.handle(t))
	}

	return s
}

// Serve answers requests read from in until ctx is cancelled or the client
// disconnects.
func (s *Server) Serve(ctx context.Context, in io.ReadCloser, out io.WriteCloser) error {
	return s.serve(ctx, &mcp.IOTransport{Reader: in, Writer: out})
}

func (s *Server) serve(ctx context.Context, transport mcp.Transport) error {
	s.log.Info().Int("tools", len(s.tools)).Msg("mcp server started")

	err := s.mcp.Run(ctx, transport)

	s.log.Info().AnErr("reason", err).Msg("mcp server stopped")
	return err
}

func (s *Server) handle(t Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}

		start := time.Now()
		text, err := t.Handler(ctx, args)
		took := time.Since(start)

		if err != nil {
			s.log.Warn().Str("tool", t.Name).RawJSON("args", args).Dur("took", took).Err(err).Msg("tool call failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		s.log.Info().Str("tool", t.Name).RawJSON("args", args).Dur("took", took).Msg("tool call")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil
	}
}
