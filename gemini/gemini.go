// Package gemini issues generation requests to the Gemini API. Each tool call
// makes exactly one upstream request, configured with or without the built-in
// Google Search grounding tool; failures are classified but never retried.
package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Output is the subset of the upstream response this server consumes.
// Grounding is nil for search-disabled requests and for upstream responses
// that carry no grounding metadata.
type Output struct {
	Text      string
	Grounding *genai.GroundingMetadata
}

// Service invokes the Gemini generation API with a credential resolved by the
// transport-specific key provider.
type Service struct {
	keys KeyProvider
}

// New creates a generation service with the supplied key provider.
func New(keys KeyProvider) *Service {
	return &Service{keys: keys}
}

// Generate issues one generation request for the supplied prompt and model.
// When withSearch is set the request enables the provider's search grounding
// tool. The client is bound to the per-request credential, so it is created
// per call and holds no state between requests.
func (s *Service) Generate(ctx context.Context, model, prompt string, withSearch bool) (*Output, error) {
	key, err := s.keys.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, classify(err)
	}

	config := &genai.GenerateContentConfig{}
	if withSearch {
		config.Temperature = genai.Ptr[float32](0)
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	response, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return nil, classify(err)
	}
	return &Output{
		Text:      response.Text(),
		Grounding: grounding(response),
	}, nil
}

func grounding(response *genai.GenerateContentResponse) *genai.GroundingMetadata {
	if len(response.Candidates) == 0 || response.Candidates[0] == nil {
		return nil
	}
	return response.Candidates[0].GroundingMetadata
}
