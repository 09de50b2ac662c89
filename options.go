package geminimcp

// Transport modes.
const (
	TransportStdio      = "stdio"
	TransportStreamable = "streamable"
)

// Options configures the server transport. Model selection comes from the
// environment (see package config), not from flags.
type Options struct {
	Transport     string `short:"t" long:"transport" description:"mcp transport type" choice:"stdio" choice:"streamable" default:"streamable"`
	Port          int    `short:"p" long:"port" description:"http port" default:"8000"`
	StreamableURI string `long:"uri" description:"streamable http endpoint" default:"/mcp"`
}

// Init applies defaults for options constructed in code rather than parsed
// from flags.
func (o *Options) Init() {
	if o.Transport == "" {
		o.Transport = TransportStreamable
	}
	if o.Port == 0 {
		o.Port = 8000
	}
	if o.StreamableURI == "" {
		o.StreamableURI = "/mcp"
	}
}
