package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/gomarkdown/markdown"

	"datalens/domain/dataset"
	"datalens/internal/analysis"
	"datalens/internal/errors"
)

// relaySampleRows is how many rows are forwarded upstream with a question
const relaySampleRows = 50

// previewRows caps the data preview echoed back from the chat endpoint
const previewRows = 10

// fallbackAnswer is the fixed reply when the upstream model is
// unavailable or returns something unusable.
const fallbackAnswer = "The assistant could not process this question right now. The statistical insights above are computed locally and remain available."

type insightsRequest struct {
	Data []map[string]any `json:"data"`
}

type chatRequest struct {
	Question string           `json:"question"`
	Dataset  []map[string]any `json:"dataset"`
}

type chatResponse struct {
	Answer      string        `json:"answer"`
	AnswerHTML  string        `json:"answer_html"`
	DataPreview []dataset.Row `json:"data_preview"`
	Charts      []chartJSON   `json:"charts"`
}

type chartJSON struct {
	Type string `json:"type"`
	X    string `json:"x"`
	Y    string `json:"y"`
}

type forecastRequest struct {
	Data         []map[string]any `json:"data"`
	TargetColumn string           `json:"target_column"`
	Steps        int              `json:"steps"`
}

type anomalyRequest struct {
	Data           []map[string]any `json:"data"`
	NumericColumns []string         `json:"numeric_columns"`
	Threshold      float64          `json:"threshold"`
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleInsights runs the full analysis pipeline over the posted rows.
// Structurally valid input always gets a 200 with a non-empty insight
// list; an empty dataset yields the single "no data" insight.
func (a *App) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if !a.decode(w, r, &req) {
		return
	}
	if len(req.Data) > a.cfg.Data.MaxUploadRows {
		respondError(w, http.StatusBadRequest, errors.InvalidInput("dataset exceeds the row limit"))
		return
	}

	rows := dataset.Normalize(req.Data)
	result := analysis.AnalyzeWithOptions(rows, analysis.Options{
		ZScoreThreshold:      a.cfg.Analysis.ZScoreThreshold,
		CorrelationThreshold: a.cfg.Analysis.CorrelationThreshold,
	})
	respondJSON(w, http.StatusOK, result)
}

// handleChat relays a question plus a truncated data sample to the
// assistant. Every failure mode degrades to the fixed fallback answer;
// the endpoint never propagates an upstream parse error.
func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !a.decode(w, r, &req) {
		return
	}

	rows := dataset.Normalize(req.Dataset)
	sample := rows
	if len(sample) > relaySampleRows {
		sample = sample[:relaySampleRows]
	}
	preview := rows
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	if preview == nil {
		preview = []dataset.Row{}
	}

	answer := fallbackAnswer
	charts := []chartJSON{}
	if a.assistant != nil {
		reply, err := a.assistant.Ask(r.Context(), req.Question, sample)
		if err != nil {
			log.Printf("[API] Assistant error (%s): %v", errors.GetCode(err), err)
		} else {
			answer = reply.Answer
			for _, c := range reply.Charts {
				charts = append(charts, chartJSON{Type: c.Type, X: c.X, Y: c.Y})
			}
		}
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Answer:      answer,
		AnswerHTML:  string(markdown.ToHTML([]byte(answer), nil, nil)),
		DataPreview: preview,
		Charts:      charts,
	})
}

// handleForecast projects a numeric target column forward with the naive
// moving-average-plus-drift projection.
func (a *App) handleForecast(w http.ResponseWriter, r *http.Request) {
	var req forecastRequest
	if !a.decode(w, r, &req) {
		return
	}

	steps := req.Steps
	if steps <= 0 {
		steps = analysis.DefaultForecastSteps
	}

	rows := dataset.Normalize(req.Data)
	values, _ := analysis.NumericSeries(rows, req.TargetColumn)
	if len(rows) == 0 || req.TargetColumn == "" || len(values) == 0 {
		respondJSON(w, http.StatusOK, map[string]any{
			"message":  "No data or missing target.",
			"forecast": []float64{},
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"forecast": analysis.Forecast(values, steps),
		"steps":    steps,
	})
}

// handleAnomaly flags outlier rows per numeric column
func (a *App) handleAnomaly(w http.ResponseWriter, r *http.Request) {
	var req anomalyRequest
	if !a.decode(w, r, &req) {
		return
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = a.cfg.Analysis.ZScoreThreshold
	}

	rows := dataset.Normalize(req.Data)
	columns := req.NumericColumns
	if len(columns) == 0 {
		for _, name := range dataset.ColumnNames(rows) {
			if analysis.InferColumnType(rows, name) == dataset.TypeNumeric {
				columns = append(columns, name)
			}
		}
	}

	byColumn := make(map[string][]int)
	seen := make(map[int]bool)
	for _, col := range columns {
		values, rowIdx := analysis.NumericSeries(rows, col)
		positions := analysis.ZScoreOutliers(values, threshold)
		indices := make([]int, 0, len(positions))
		for _, pos := range positions {
			indices = append(indices, rowIdx[pos])
			seen[rowIdx[pos]] = true
		}
		byColumn[col] = indices
	}

	anomalies := make([]int, 0, len(seen))
	for idx := range seen {
		anomalies = append(anomalies, idx)
	}
	sort.Ints(anomalies)

	respondJSON(w, http.StatusOK, map[string]any{
		"anomalies": anomalies,
		"by_column": byColumn,
		"threshold": threshold,
	})
}

// decode reads a JSON body, translating malformed input into a 400
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, errors.ParseError("malformed request body", err))
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
