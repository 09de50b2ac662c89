package geminimcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/viant/gemini-mcp/config"
	"github.com/viant/gemini-mcp/tool"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	"github.com/viant/mcp/server"
)

const (
	serverName    = "Gemini Web Search"
	serverVersion = "0.1"

	modelsResourceURI = "config://models"
)

// NewServer assembles an MCP server exposing the web_search and use_gemini
// tools backed by the supplied generator. The streamable HTTP transport is
// guarded by the Bearer middleware; stdio runs without it and relies on the
// process-wide key.
func NewServer(cfg *config.Config, generator tool.Generator, options *Options) (*server.Server, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()

	webSearch := tool.NewWebSearch(generator, cfg)
	chat := tool.NewChat(generator, cfg)

	newHandler := protoserver.WithDefaultHandler(context.Background(), func(h *protoserver.DefaultHandler) error {
		if err := protoserver.RegisterTool[*tool.WebSearchInput, *tool.SearchOutput](h.Registry, "web_search", tool.WebSearchDescription, webSearch.Call); err != nil {
			return err
		}
		if err := protoserver.RegisterTool[*tool.ChatInput, *tool.TextOutput](h.Registry, "use_gemini", tool.ChatDescription, chat.Call); err != nil {
			return err
		}
		registerModelsResource(h, cfg)
		return nil
	})

	serverOptions := []server.Option{
		server.WithNewHandler(newHandler),
		server.WithImplementation(schema.Implementation{Name: serverName, Version: serverVersion}),
	}
	if options.Transport == TransportStreamable {
		serverOptions = append(serverOptions,
			server.WithAuthorizer(BearerAuth),
			server.WithStreamableURI(options.StreamableURI),
			server.WithCustomHTTPHandler("/", healthHandler),
		)
	}

	srv, err := server.New(serverOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	srv.UseStreamableHTTP(options.Transport == TransportStreamable)
	return srv, nil
}

// registerModelsResource exposes the configured role to model mapping as a
// readable resource.
func registerModelsResource(h *protoserver.DefaultHandler, cfg *config.Config) {
	mimeType := "application/json"
	h.Registry.RegisterResource(schema.Resource{
		Name:     "models",
		Uri:      modelsResourceURI,
		MimeType: &mimeType,
	}, func(_ context.Context, request *schema.ReadResourceRequest) (*schema.ReadResourceResult, *jsonrpc.Error) {
		data, err := json.Marshal(cfg.Models())
		if err != nil {
			return nil, jsonrpc.NewInternalError(err.Error(), nil)
		}
		return &schema.ReadResourceResult{
			Contents: []schema.ReadResourceResultContentsElem{
				{Uri: request.Params.Uri, MimeType: &mimeType, Text: string(data)},
			},
		}, nil
	})
}

// healthHandler serves the root path, which is excluded from authentication.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
