// Package prompt assembles the chat-completion request body from the user
// prompt, the target model and the optional file context.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/KimSchm/gh-models-cli/filectx"
	"github.com/KimSchm/gh-models-cli/model"
)

// Fixed sampling parameters of every request. These are not configurable.
const (
	MaxTokens   = 1000
	Temperature = 1.0
	TopP        = 1.0
)

// Build merges the prompt, the model identifier and the context fragment into
// a single request. The model identifier is passed through unvalidated; a bad
// one is only caught by the API's own error response.
func Build(userPrompt, modelName string, ctx filectx.Context) (model.ChatRequest, error) {
	content, err := messageContent(userPrompt, ctx)
	if err != nil {
		return model.ChatRequest{}, err
	}

	return model.ChatRequest{
		Messages: []model.Message{
			{Role: model.RoleUser, Content: content},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
		TopP:        TopP,
		Stream:      false,
		Model:       modelName,
	}, nil
}

// messageContent returns the bare prompt string when no context is attached,
// and a two-block array otherwise: the prompt in the first block, the
// serialized context in the second. Directory records are JSON-serialized
// because content blocks only carry text.
func messageContent(userPrompt string, ctx filectx.Context) (any, error) {
	switch ctx.Variant {
	case filectx.None:
		return userPrompt, nil
	case filectx.Text:
		return []model.ContentBlock{
			textBlock(userPrompt),
			textBlock(ctx.Text),
		}, nil
	case filectx.Files:
		serialized, err := json.Marshal(ctx.Files)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize directory context: %w", err)
		}
		return []model.ContentBlock{
			textBlock(userPrompt),
			textBlock(string(serialized)),
		}, nil
	}
	return nil, fmt.Errorf("unknown context variant: %d", ctx.Variant)
}

func textBlock(text string) model.ContentBlock {
	return model.ContentBlock{Type: model.ContentTypeText, Text: text}
}
