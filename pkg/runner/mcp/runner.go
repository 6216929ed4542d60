package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/logger"
)

// Runner serves the journal over MCP on stdio.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	In  io.Reader
	Out io.Writer
}

// Run starts the Model Context Protocol server on the process's stdio.
func Run(ctx context.Context, svc *app.Service, version string) error {
	r := Runner{
		Service: svc,
		Name:    "storyjournal",
		Version: version,
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	if name == "" {
		name = "storyjournal"
	}
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write a personal story journal: entries, morning pages, prompt responses, homework for life, story receipts and timed writings."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	wrapped := NewService(svc)
	registerResources(srv, wrapped)
	registerTools(srv, wrapped)
	return srv
}

// Do executes the runner until ctx ends or stdin closes.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a journal")
	}
	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	srv := NewServer(r.Service, r.Name, r.Version)
	stdio := server.NewStdioServer(srv)
	logger.Info("mcp: serving on stdio", "version", r.Version)
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
