// Package citation converts Gemini grounding metadata into the client-facing
// citation schema. Grounding metadata is optional at every nesting level, so
// the conversion degrades gracefully: a partial citation trail is more useful
// to a caller than a failed tool call, and no degree of metadata
// incompleteness is ever surfaced as an error.
package citation

import (
	"google.golang.org/genai"
)

type (
	// Source references a single web source backing a cited text segment.
	Source struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	}

	// Citation links a span of generated text to the sources it was grounded on.
	Citation struct {
		StartIndex int      `json:"start_index"`
		EndIndex   int      `json:"end_index"`
		Text       string   `json:"text"`
		Sources    []Source `json:"sources"`
	}

	// Response is the web search tool output. WebSearchQueries and Citations
	// are present only when citations were requested and derivable.
	Response struct {
		Text             string     `json:"text"`
		WebSearchQueries []string   `json:"web_search_queries,omitempty"`
		Citations        []Citation `json:"citations,omitempty"`
	}
)

// Normalize builds a Response from generated text and its optional grounding
// metadata. When includeCitations is false the metadata is never inspected.
// A response with no metadata, no supports, or only unresolvable chunk
// references yields a text-only Response.
func Normalize(text string, metadata *genai.GroundingMetadata, includeCitations bool) *Response {
	response := &Response{Text: text}
	if !includeCitations || metadata == nil {
		return response
	}
	if len(metadata.WebSearchQueries) > 0 {
		response.WebSearchQueries = metadata.WebSearchQueries
	}
	for _, support := range metadata.GroundingSupports {
		if citation, ok := normalizeSupport(support, metadata.GroundingChunks); ok {
			response.Citations = append(response.Citations, citation)
		}
	}
	return response
}

// normalizeSupport resolves one grounding support into a Citation. The chunk
// list is not guaranteed to cover every referenced index; out-of-range indices
// are skipped as a data-quality gap. A support that yields no sources produces
// no citation.
func normalizeSupport(support *genai.GroundingSupport, chunks []*genai.GroundingChunk) (Citation, bool) {
	if support == nil || support.Segment == nil {
		return Citation{}, false
	}
	citation := Citation{
		StartIndex: int(support.Segment.StartIndex),
		EndIndex:   int(support.Segment.EndIndex),
		Text:       support.Segment.Text,
	}
	seen := map[Source]bool{}
	for _, index := range support.GroundingChunkIndices {
		if index < 0 || int(index) >= len(chunks) {
			continue
		}
		chunk := chunks[index]
		if chunk == nil || chunk.Web == nil {
			continue
		}
		source := Source{Title: chunk.Web.Title, URI: chunk.Web.URI}
		if seen[source] {
			continue
		}
		seen[source] = true
		citation.Sources = append(citation.Sources, source)
	}
	if len(citation.Sources) == 0 {
		return Citation{}, false
	}
	return citation, true
}
