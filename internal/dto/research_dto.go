package dto

import "ai-research-be/internal/entity"

type RunRequest struct {
	SessionId string `json:"session_id"`
	Query     string `json:"query" validate:"required"`
	ChatMode  bool   `json:"chat_mode"`
	UserName  string `json:"user_name"`
}

type DocumentResponse struct {
	Id     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Url    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

type PlanResponse struct {
	Plan string `json:"plan"`
}

// RunResponse returns the full documents including their text, unlike the
// persisted history which keeps only id/title/url.
type RunResponse struct {
	SessionId   string             `json:"session_id"`
	SessionName string             `json:"session_name"`
	Summary     string             `json:"summary"`
	Plan        *PlanResponse      `json:"plan"`
	Docs        []DocumentResponse `json:"docs"`
	Mode        string             `json:"mode"`
}

// HistoryResponse mirrors the persisted sessions, keyed by session id.
type HistoryResponse map[string]*entity.Session

func DocumentResponseFrom(d entity.Document) DocumentResponse {
	return DocumentResponse{
		Id:     d.Id,
		Title:  d.Title,
		Text:   d.Text,
		Url:    d.Url,
		Source: d.Source,
	}
}
