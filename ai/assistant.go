// Package ai implements the language-model relay: it forwards a question
// plus a dataset sample to the upstream provider and maps the reply into
// typed chart suggestions. Failures never surface as errors to end users;
// the HTTP layer substitutes a fixed fallback answer.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"datalens/domain/dataset"
	"datalens/internal/config"
	"datalens/internal/errors"
	"datalens/ports"

	openai "github.com/sashabaranov/go-openai"
)

// promptPreviewRows caps how many sample rows are inlined into the prompt
const promptPreviewRows = 10

// allowedChartTypes is the relay contract's chart vocabulary. Anything
// else the model suggests (table, none, ...) is dropped.
var allowedChartTypes = map[string]bool{
	"bar":     true,
	"line":    true,
	"pie":     true,
	"scatter": true,
}

// completionAPI is the slice of the OpenAI client the assistant uses
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Assistant answers dataset questions through the OpenAI chat API
type Assistant struct {
	client        completionAPI
	model         string
	systemContext string
	maxTokens     int
	temperature   float32
}

// NewAssistant builds an assistant from config. Returns nil when no API
// key is configured; callers treat a nil assistant as relay-disabled.
func NewAssistant(cfg config.AIConfig) *Assistant {
	if cfg.OpenAIKey == "" {
		log.Printf("[Assistant] No OPENAI_API_KEY configured, relay disabled")
		return nil
	}
	return &Assistant{
		client:        openai.NewClient(cfg.OpenAIKey),
		model:         cfg.OpenAIModel,
		systemContext: cfg.SystemContext,
		maxTokens:     cfg.MaxTokens,
		temperature:   float32(cfg.Temperature),
	}
}

// upstreamReply mirrors the JSON shape the prompt asks for
type upstreamReply struct {
	Answer      string `json:"answer"`
	Suggestions []struct {
		Type string `json:"type"`
		X    string `json:"x"`
		Y    string `json:"y"`
	} `json:"suggestions"`
}

// Ask forwards the question and sample upstream and parses the reply
func (a *Assistant) Ask(ctx context.Context, question string, sample []dataset.Row) (*ports.ChatAnswer, error) {
	prompt := BuildPrompt(question, sample)
	log.Printf("[Assistant] Asking model=%s, promptLength=%d", a.model, len(prompt))

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.systemContext},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, errors.ExternalServiceError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.ExternalServiceError("openai", fmt.Errorf("no choices in response"))
	}

	return ParseReply(resp.Choices[0].Message.Content)
}

// BuildPrompt renders the analyst prompt: schema, a short row preview, and
// the user question, with strict JSON output instructions.
func BuildPrompt(question string, sample []dataset.Row) string {
	schema := dataset.ColumnNames(sample)
	schemaJSON, _ := json.Marshal(schema)

	preview := sample
	if len(preview) > promptPreviewRows {
		preview = preview[:promptPreviewRows]
	}
	previewJSON, err := json.Marshal(preview)
	if err != nil {
		previewJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are an AI data analyst.
Dataset schema: %s
Sample rows (first %d): %s
User question: %s

Task:
1) Provide a concise, business-friendly answer.
2) Suggest up to 3 useful visualizations based on the data and question.
3) Each suggestion must include fields: type (bar/line/pie/scatter), x, y.

Respond with JSON ONLY in this exact structure:
{"answer": "...", "suggestions": [{"type": "bar", "x": "column_name", "y": "column_name"}]}`,
		schemaJSON, len(preview), previewJSON, question)
}

// ParseReply decodes the model's JSON (tolerating markdown fences and
// leading chatter) into a ChatAnswer, dropping suggestions outside the
// chart vocabulary.
func ParseReply(content string) (*ports.ChatAnswer, error) {
	cleaned := cleanJSONContent(content)

	var reply upstreamReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, errors.ParseError("malformed assistant reply", err)
	}

	answer := &ports.ChatAnswer{
		Answer: reply.Answer,
		Charts: []ports.ChartSuggestion{},
	}
	for _, s := range reply.Suggestions {
		if !allowedChartTypes[s.Type] {
			continue
		}
		answer.Charts = append(answer.Charts, ports.ChartSuggestion{Type: s.Type, X: s.X, Y: s.Y})
	}
	return answer, nil
}
