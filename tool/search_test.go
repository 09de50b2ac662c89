package tool

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/gemini-mcp/config"
	"github.com/viant/gemini-mcp/gemini"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	output *gemini.Output
	err    error

	calls      int
	model      string
	prompt     string
	withSearch bool
}

func (f *fakeGenerator) Generate(_ context.Context, model, prompt string, withSearch bool) (*gemini.Output, error) {
	f.calls++
	f.model = model
	f.prompt = prompt
	f.withSearch = withSearch
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func testConfig() *config.Config {
	return &config.Config{
		WebSearchModel: "gemini-flash-latest",
		DefaultModel:   "gemini-flash-lite-latest",
		AdvancedModel:  "gemini-2.5-pro",
	}
}

func TestWebSearch_Call(t *testing.T) {
	metadata := &genai.GroundingMetadata{
		WebSearchQueries: []string{"query1", "query2"},
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{Title: "Source 1", URI: "https://example.com/1"}},
		},
		GroundingSupports: []*genai.GroundingSupport{
			{
				Segment:               &genai.Segment{StartIndex: 0, EndIndex: 10, Text: "cited span"},
				GroundingChunkIndices: []int32{0},
			},
		},
	}

	testCases := []struct {
		description      string
		input            *WebSearchInput
		output           *gemini.Output
		expectModel      string
		expectStructured map[string]interface{}
	}{
		{
			description: "citations omitted by default",
			input:       &WebSearchInput{Query: "test query"},
			output:      &gemini.Output{Text: "Test search result", Grounding: metadata},
			expectModel: "gemini-flash-latest",
			expectStructured: map[string]interface{}{
				"text": "Test search result",
			},
		},
		{
			description: "citations included on request",
			input:       &WebSearchInput{Query: "test query", IncludeCitations: true},
			output:      &gemini.Output{Text: "Test search result", Grounding: metadata},
			expectModel: "gemini-flash-latest",
			expectStructured: map[string]interface{}{
				"text":               "Test search result",
				"web_search_queries": []interface{}{"query1", "query2"},
				"citations": []interface{}{
					map[string]interface{}{
						"start_index": float64(0),
						"end_index":   float64(10),
						"text":        "cited span",
						"sources": []interface{}{
							map[string]interface{}{"title": "Source 1", "uri": "https://example.com/1"},
						},
					},
				},
			},
		},
		{
			description: "nil grounding metadata yields text only",
			input:       &WebSearchInput{Query: "test query", IncludeCitations: true},
			output:      &gemini.Output{Text: "Test search result"},
			expectModel: "gemini-flash-latest",
			expectStructured: map[string]interface{}{
				"text": "Test search result",
			},
		},
		{
			description: "caller model override wins",
			input:       &WebSearchInput{Query: "test query", Model: "gemini-2.5-pro"},
			output:      &gemini.Output{Text: "Test search result"},
			expectModel: "gemini-2.5-pro",
			expectStructured: map[string]interface{}{
				"text": "Test search result",
			},
		},
	}

	for _, testCase := range testCases {
		generator := &fakeGenerator{output: testCase.output}
		handler := NewWebSearch(generator, testConfig())
		result, rpcErr := handler.Call(context.Background(), testCase.input)
		if !assert.Nil(t, rpcErr, testCase.description) {
			continue
		}
		assert.Nil(t, result.IsError, testCase.description)
		assert.Equal(t, 1, generator.calls, testCase.description)
		assert.True(t, generator.withSearch, testCase.description)
		assert.Equal(t, testCase.expectModel, generator.model, testCase.description)
		assert.Equal(t, testCase.expectStructured, result.StructuredContent, testCase.description)
	}
}

func TestWebSearch_Prompt(t *testing.T) {
	generator := &fakeGenerator{output: &gemini.Output{Text: "ok"}}
	handler := NewWebSearch(generator, testConfig())
	handler.now = func() time.Time {
		return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	}

	_, rpcErr := handler.Call(context.Background(), &WebSearchInput{Query: "solar eclipse"})
	assert.Nil(t, rpcErr)
	assert.Contains(t, generator.prompt, `"solar eclipse"`)
	assert.Contains(t, generator.prompt, "The current date is 2024-06-30")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(generator.prompt), "solar eclipse"))
}

func TestWebSearch_EmptyQuery(t *testing.T) {
	generator := &fakeGenerator{output: &gemini.Output{Text: "ok"}}
	handler := NewWebSearch(generator, testConfig())

	result, rpcErr := handler.Call(context.Background(), &WebSearchInput{Query: ""})
	assert.Nil(t, rpcErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	// validation failure must not reach the upstream API
	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":     "validation",
			"message":  "query must be a non-empty string",
			"argument": "query",
		},
	}, result.StructuredContent)
}

func TestWebSearch_UpstreamError(t *testing.T) {
	generator := &fakeGenerator{err: &gemini.UpstreamError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}}
	handler := NewWebSearch(generator, testConfig())

	result, rpcErr := handler.Call(context.Background(), &WebSearchInput{Query: "test"})
	assert.Nil(t, rpcErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	assert.Equal(t, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":    "upstream",
			"message": "quota exceeded",
			"code":    429,
			"status":  "RESOURCE_EXHAUSTED",
		},
	}, result.StructuredContent)
}

func TestWebSearch_AuthError(t *testing.T) {
	generator := &fakeGenerator{err: &gemini.AuthError{Message: "GEMINI_API_KEY not set"}}
	handler := NewWebSearch(generator, testConfig())

	result, rpcErr := handler.Call(context.Background(), &WebSearchInput{Query: "test"})
	assert.Nil(t, rpcErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	assert.Equal(t, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":    "authentication",
			"message": "GEMINI_API_KEY not set",
		},
	}, result.StructuredContent)
}
