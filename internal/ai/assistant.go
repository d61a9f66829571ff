// Package ai wraps the Gemini text-completion collaborator. Everything here
// is a boundary: failures return errors for the caller to surface, and no
// persisted state is ever touched from this package.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const modelName = "gemini-2.0-flash-001"

// Complete sends one prompt with a system instruction and returns the free
// text reply.
func Complete(ctx context.Context, apiKey, systemInstruction, userMessage string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// GuessProductName extracts a product-name guess from a bill photo. The
// caller treats any failure as non-fatal and leaves the field blank.
func GuessProductName(ctx context.Context, apiKey string, image []byte, mimeType string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)

	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" {
		format = "jpeg"
	}

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text("Read this retail bill photo and reply with only the product name, nothing else. If no product name is readable, reply with an empty string."),
	)
	if err != nil {
		return "", err
	}

	text, err := firstText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no text part in model response")
}
