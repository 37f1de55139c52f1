package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator is the production Generator backed by the OpenAI chat
// completions API. One Complete call maps to one billed API request.
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

// NewOpenAIGenerator constructs a generator for the given API key and model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Complete sends one chat completion request and returns the raw text of the
// first choice. Context cancellation and deadlines propagate through the SDK.
func (g *OpenAIGenerator) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("planner.OpenAIGenerator.Complete: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("planner.OpenAIGenerator.Complete: response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// compile-time check: OpenAIGenerator must satisfy Generator.
var _ Generator = (*OpenAIGenerator)(nil)
