package entity

import "github.com/google/uuid"

// Document is a live retrieval result. The full text is returned to the
// caller but never persisted (history keeps a DocumentRef projection only).
type Document struct {
	Id     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Url    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

// DocumentRef is the persisted projection of a Document.
type DocumentRef struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Url   string `json:"url,omitempty"`
}

type Plan struct {
	Plan string `json:"plan"`
}

type UserMeta struct {
	Name string `json:"name"`
}

// HistoryEntry records one query/response cycle. Entries are append-only.
type HistoryEntry struct {
	Id        uuid.UUID     `json:"id"`
	Timestamp string        `json:"timestamp"` // ISO-8601 UTC
	Query     string        `json:"query"`
	Docs      []DocumentRef `json:"docs"`
	Summary   string        `json:"summary"`
	Plan      *Plan         `json:"plan"`
	Mode      string        `json:"mode"`
	User      UserMeta      `json:"user"`
}

// Session is a named conversation context. LastSummary is the one-step
// memory window fed as context into the next summarization call.
type Session struct {
	History     []HistoryEntry `json:"history"`
	LastSummary string         `json:"last_summary"`
	UserName    string         `json:"user_name"`
}

// State is the single persisted root object.
type State struct {
	Sessions map[string]*Session `json:"sessions"`
}

func NewState() *State {
	return &State{Sessions: make(map[string]*Session)}
}

// SessionFor returns the session for the given id, creating it on first use.
func (s *State) SessionFor(sessionId string) *Session {
	if s.Sessions == nil {
		s.Sessions = make(map[string]*Session)
	}
	session, ok := s.Sessions[sessionId]
	if !ok {
		session = &Session{History: []HistoryEntry{}}
		s.Sessions[sessionId] = session
	}
	return session
}
