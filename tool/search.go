package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/gemini-mcp/citation"
	"github.com/viant/gemini-mcp/config"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// WebSearchDescription documents the web_search tool.
const WebSearchDescription = "Searches the web with Google Search and returns a grounded summary, optionally with per-segment source citations."

// searchPrompt wraps the caller query into a research instruction carrying the
// current date so the model favours recent results.
const searchPrompt = `Conduct targeted Google Searches to gather the most recent, credible information on "%[1]v" and synthesize it into a verifiable text artifact.

Instructions:
- Query should ensure that the most current information is gathered. The current date is %[2]v.
- Conduct multiple, diverse searches to gather comprehensive information.
- Consolidate key findings while meticulously tracking the source(s) for each specific piece of information.
- The output should be a well-written summary or report based on your search findings.
- Only include the information found in the search results, don't make up any information.

Research Topic:
%[1]v
`

// SearchOutput is the web_search result schema.
type SearchOutput = citation.Response

// WebSearchInput holds the web_search tool arguments.
type WebSearchInput struct {
	Query            string `json:"query" description:"The query to search."`
	IncludeCitations bool   `json:"include_citations,omitempty" description:"Include web search queries and per-segment source citations in the result."`
	Model            string `json:"model,omitempty" description:"Override the configured web search model."`
}

// WebSearch handles the web_search tool.
type WebSearch struct {
	generator Generator
	config    *config.Config
	now       func() time.Time
}

// NewWebSearch creates the web_search tool handler.
func NewWebSearch(generator Generator, config *config.Config) *WebSearch {
	return &WebSearch{generator: generator, config: config, now: time.Now}
}

// Call performs one grounded search generation and normalizes its citation
// trail. Metadata incompleteness reduces output fields but never fails the
// call; generated text is always returned once the upstream call succeeded.
func (t *WebSearch) Call(ctx context.Context, input *WebSearchInput) (*schema.CallToolResult, *jsonrpc.Error) {
	if input.Query == "" {
		return validationResult("query", "query must be a non-empty string"), nil
	}
	model := t.config.Resolve(config.RoleWebSearch, input.Model)
	prompt := fmt.Sprintf(searchPrompt, input.Query, t.now().Format("2006-01-02"))
	output, err := t.generator.Generate(ctx, model, prompt, true)
	if err != nil {
		return classifiedResult(err), nil
	}
	return jsonResult(citation.Normalize(output.Text, output.Grounding, input.IncludeCitations))
}
