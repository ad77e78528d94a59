package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/calcpad/internal/session"
	"github.com/averycrespi/calcpad/internal/tools"
	"github.com/averycrespi/calcpad/pkg/project"
	"github.com/averycrespi/calcpad/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calcpad MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	manager   *session.Manager
	config    types.Config
	logger    *slog.Logger
}

// NewCalcServer creates a new calcpad MCP server with all tools registered
func NewCalcServer(config types.Config, logger *slog.Logger) *CalcServer {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CalcServer{
		mcpServer: mcpServer,
		manager:   session.NewManager(config.MaxCalculators, logger),
		config:    config,
		logger:    logger,
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Start serves MCP over stdio until the context is cancelled or stdin closes
func (s *CalcServer) Start(ctx context.Context) error {
	s.logger.Info("Starting calcpad MCP server",
		"version", project.Version,
		"max_calculators", s.config.MaxCalculators,
	)

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

func (s *CalcServer) registerTools() {
	pressKeysTool := tools.NewPressKeysTool(s.manager)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	readDisplayTool := tools.NewReadDisplayTool(s.manager)
	s.mcpServer.AddTool(readDisplayTool.GetTool(), readDisplayTool.Handle)

	inspectTool := tools.NewInspectCalculatorTool(s.manager)
	s.mcpServer.AddTool(inspectTool.GetTool(), inspectTool.Handle)

	resetTool := tools.NewResetCalculatorTool(s.manager)
	s.mcpServer.AddTool(resetTool.GetTool(), resetTool.Handle)

	listKeysTool := tools.NewListKeysTool()
	s.mcpServer.AddTool(listKeysTool.GetTool(), listKeysTool.Handle)

	listCalculatorsTool := tools.NewListCalculatorsTool(s.manager)
	s.mcpServer.AddTool(listCalculatorsTool.GetTool(), listCalculatorsTool.Handle)
}
