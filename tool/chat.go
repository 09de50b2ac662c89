package tool

import (
	"context"

	"github.com/viant/gemini-mcp/config"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ChatDescription documents the use_gemini tool.
const ChatDescription = "Sends a prompt to a Gemini model and returns the generated text."

// ChatInput holds the use_gemini tool arguments.
type ChatInput struct {
	Prompt string `json:"prompt" description:"The prompt to send to the model."`
	Model  string `json:"model,omitempty" description:"Override the configured default model."`
}

// Chat handles the use_gemini tool.
type Chat struct {
	generator Generator
	config    *config.Config
}

// NewChat creates the use_gemini tool handler.
func NewChat(generator Generator, config *config.Config) *Chat {
	return &Chat{generator: generator, config: config}
}

// Call generates text without search grounding. A caller-supplied model wins
// over the configured default.
func (t *Chat) Call(ctx context.Context, input *ChatInput) (*schema.CallToolResult, *jsonrpc.Error) {
	if input.Prompt == "" {
		return validationResult("prompt", "prompt must be a non-empty string"), nil
	}
	model := t.config.Resolve(config.RoleDefault, input.Model)
	output, err := t.generator.Generate(ctx, model, input.Prompt, false)
	if err != nil {
		return classifiedResult(err), nil
	}
	return jsonResult(&TextOutput{Text: output.Text})
}
