package chat

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/serenitypath/hospital-api/internal/model"
)

// Client generates one assistant reply for a conversation turn.
type Client interface {
	Generate(ctx context.Context, systemInstruction string, history []model.ChatMessage, message string) (string, error)
	Close() error
}

type geminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient connects to the Gemini API with the given key.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiClient{client: client, modelName: modelName}, nil
}

func (g *geminiClient) Generate(ctx context.Context, systemInstruction string, history []model.ChatMessage, message string) (string, error) {
	gm := g.client.GenerativeModel(g.modelName)
	gm.SetTemperature(0.7)
	gm.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	cs := gm.StartChat()
	for _, msg := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  string(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Parts)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (g *geminiClient) Close() error { return g.client.Close() }

type disabledClient struct{}

// NewDisabledClient stands in when no API key is configured. Every call fails,
// which keeps the breaker open and the assistant on its fallback reply.
func NewDisabledClient() Client { return disabledClient{} }

func (disabledClient) Generate(context.Context, string, []model.ChatMessage, string) (string, error) {
	return "", fmt.Errorf("assistant is not configured")
}

func (disabledClient) Close() error { return nil }
