package calculator

import "chi-calculator/internal/presentation"

// Snapshot is the readable state surface handed to views.
type Snapshot struct {
	Display         string             `json:"display"`
	Expression      string             `json:"expression"`
	Phase           string             `json:"phase"`
	PendingOperator string             `json:"pending_operator,omitempty"`
	History         []string           `json:"history"`
	HistoryOpen     bool               `json:"history_open"`
	HistoryClosing  bool               `json:"history_closing"`
	Theme           presentation.Theme `json:"theme"`
}

// KeysRequest is the JSON body for POST /calculator/keys.
type KeysRequest struct {
	Keys []string `json:"keys"` // e.g. ["1", "+", "2", "="]
}
