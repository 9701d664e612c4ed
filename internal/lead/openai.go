package lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "Tu es un assistant qui analyse les demandes de prospects. " +
		"Génère un résumé concis (2-3 phrases) et détermine la priorité (low, medium, high) " +
		"basée sur l'urgence et la complexité."
	userPromptPrefix = `Analyse cette demande et retourne un JSON avec "summary" et "priority" (low/medium/high): `

	unavailableSummary = "Résumé indisponible"
	temperature        = 0.7
)

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAnalyzer asks a chat model for a JSON {summary, priority} verdict.
type OpenAIAnalyzer struct {
	client completionClient
	model  string
}

func NewOpenAIAnalyzer(apiKey, baseURL, model string) *OpenAIAnalyzer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIAnalyzer{client: openai.NewClientWithConfig(cfg), model: model}
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, details string) (Analysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPromptPrefix + details},
		},
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Analysis{}, errors.New("chat completion returned no choices")
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

func parseVerdict(content string) (Analysis, error) {
	var raw struct {
		Summary  string `json:"summary"`
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return Analysis{}, fmt.Errorf("decode verdict: %w", err)
	}

	out := Analysis{
		Summary:  strings.TrimSpace(raw.Summary),
		Priority: Priority(strings.ToLower(strings.TrimSpace(raw.Priority))),
	}
	if out.Summary == "" {
		out.Summary = unavailableSummary
	}
	if !out.Priority.IsValid() {
		out.Priority = PriorityMedium
	}
	return out, nil
}

var _ Analyzer = (*OpenAIAnalyzer)(nil)
