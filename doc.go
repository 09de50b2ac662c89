// Package geminimcp implements an MCP server bridging to the Gemini
// generative AI API. It exposes two tools:
//
//  1. web_search – grounded Google Search generation with optional
//     per-segment source citations, and
//  2. use_gemini – plain text generation against a configurable model.
//
// The server runs over stdio or streamable HTTP. The two transports resolve
// the Gemini credential differently: stdio reads one process-wide API key
// from the environment, while the HTTP transport extracts a Bearer token from
// the Authorization header of each incoming request and uses it as the
// per-request credential.
package geminimcp
