package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/gemini-mcp/gemini"
)

func TestChat_Call(t *testing.T) {
	testCases := []struct {
		description string
		input       *ChatInput
		expectModel string
	}{
		{
			description: "no override resolves the configured default model",
			input:       &ChatInput{Prompt: "test prompt"},
			expectModel: "gemini-flash-lite-latest",
		},
		{
			description: "caller override wins",
			input:       &ChatInput{Prompt: "test prompt", Model: "gemini-2.5-pro"},
			expectModel: "gemini-2.5-pro",
		},
	}

	for _, testCase := range testCases {
		generator := &fakeGenerator{output: &gemini.Output{Text: "Gemini test response"}}
		handler := NewChat(generator, testConfig())
		result, rpcErr := handler.Call(context.Background(), testCase.input)
		if !assert.Nil(t, rpcErr, testCase.description) {
			continue
		}
		assert.Nil(t, result.IsError, testCase.description)
		assert.Equal(t, testCase.expectModel, generator.model, testCase.description)
		assert.Equal(t, "test prompt", generator.prompt, testCase.description)
		assert.False(t, generator.withSearch, testCase.description)
		assert.Equal(t, map[string]interface{}{"text": "Gemini test response"}, result.StructuredContent, testCase.description)
	}
}

func TestChat_EmptyPrompt(t *testing.T) {
	generator := &fakeGenerator{output: &gemini.Output{Text: "ok"}}
	handler := NewChat(generator, testConfig())

	result, rpcErr := handler.Call(context.Background(), &ChatInput{})
	assert.Nil(t, rpcErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":     "validation",
			"message":  "prompt must be a non-empty string",
			"argument": "prompt",
		},
	}, result.StructuredContent)
}

func TestChat_AuthError(t *testing.T) {
	generator := &fakeGenerator{err: &gemini.AuthError{Message: "bearer token not found in request context"}}
	handler := NewChat(generator, testConfig())

	result, rpcErr := handler.Call(context.Background(), &ChatInput{Prompt: "test prompt"})
	assert.Nil(t, rpcErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	assert.Equal(t, map[string]interface{}{
		"error": map[string]interface{}{
			"kind":    "authentication",
			"message": "bearer token not found in request context",
		},
	}, result.StructuredContent)
}
