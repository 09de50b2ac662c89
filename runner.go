package geminimcp

import (
	"context"
	"fmt"
	"log"

	"github.com/jessevdk/go-flags"
	"github.com/viant/gemini-mcp/config"
	"github.com/viant/gemini-mcp/gemini"
)

// Run parses CLI arguments and serves MCP over the selected transport until
// the transport shuts down.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	cfg := config.New()

	// stdio uses one process-wide key; HTTP resolves the key from each
	// request's Bearer token.
	var keys gemini.KeyProvider
	if options.Transport == TransportStdio {
		keys = gemini.NewEnvKey()
	} else {
		keys = &gemini.ContextKey{}
	}

	srv, err := NewServer(cfg, gemini.New(keys), options)
	if err != nil {
		return err
	}
	if options.Transport == TransportStdio {
		return srv.Stdio(ctx).ListenAndServe()
	}
	addr := fmt.Sprintf(":%v", options.Port)
	log.Printf("serving MCP on %v%v", addr, options.StreamableURI)
	return srv.HTTP(ctx, addr).ListenAndServe()
}
