package ports

import (
	"context"

	"datalens/domain/dataset"
)

// ChartSuggestion is one visualization the assistant proposes.
// Type is one of bar, line, pie, scatter.
type ChartSuggestion struct {
	Type string `json:"type"`
	X    string `json:"x"`
	Y    string `json:"y"`
}

// ChatAnswer is the assistant's reply to a natural-language question
type ChatAnswer struct {
	Answer string            `json:"answer"`
	Charts []ChartSuggestion `json:"charts"`
}

// Assistant answers questions about a dataset sample. Implementations call
// an external language model; the analysis pipeline never depends on one.
type Assistant interface {
	Ask(ctx context.Context, question string, sample []dataset.Row) (*ChatAnswer, error)
}
