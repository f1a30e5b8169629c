package http

import (
	"strings"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/response"
)

// --- Request DTOs ---

type commandReq struct {
	Text string `json:"text" binding:"required"`
}

func (r commandReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r commandReq) toInput() assistant.HandleInput {
	return assistant.HandleInput{Text: r.Text}
}

// --- Response DTOs ---

type commandResp struct {
	Message              string   `json:"message"`
	RequiresConfirmation bool     `json:"requiresConfirmation,omitempty"`
	PendingID            string   `json:"pendingId,omitempty"`
	Confidence           *float64 `json:"confidence,omitempty"`
	ActionsExecuted      *int     `json:"actionsExecuted,omitempty"`
	Source               string   `json:"source,omitempty"`
}

func (h *handler) newCommandResp(r assistant.Reply) commandResp {
	return commandResp{
		Message:              r.Message,
		RequiresConfirmation: r.RequiresConfirmation,
		PendingID:            r.PendingID,
		Confidence:           r.Confidence,
		ActionsExecuted:      r.ActionsExecuted,
		Source:               string(r.Source),
	}
}

type pendingResp struct {
	ID              string            `json:"id"`
	Actions         []string          `json:"actions"`
	OriginalCommand string            `json:"originalCommand"`
	Confidence      float64           `json:"confidence"`
	IsGenerated     bool              `json:"isGenerated"`
	Explanation     string            `json:"explanation,omitempty"`
	Source          string            `json:"source,omitempty"`
	CreatedAt       response.DateTime `json:"createdAt"`
}

func (h *handler) newPendingResp(p model.PendingExecution) pendingResp {
	return pendingResp{
		ID:              p.ID,
		Actions:         p.Actions,
		OriginalCommand: p.OriginalCommand,
		Confidence:      p.Confidence,
		IsGenerated:     p.IsGenerated,
		Explanation:     p.Explanation,
		Source:          string(p.Source),
		CreatedAt:       response.DateTime(p.CreatedAt),
	}
}

type statsResp struct {
	TotalCommands  int `json:"totalCommands"`
	TotalHistory   int `json:"totalHistory"`
	IntentPatterns int `json:"intentPatterns"`
}

func (h *handler) newStatsResp(s knowledge.Stats) statsResp {
	return statsResp{
		TotalCommands:  s.PatternCount,
		TotalHistory:   s.HistoryCount,
		IntentPatterns: s.GroupCount,
	}
}
