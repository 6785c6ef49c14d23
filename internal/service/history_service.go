package service

import (
	"strings"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
)

// IHistoryService looks up persisted sessions by exact session id or by
// normalized display name.
type IHistoryService interface {
	GetBySessionId(sessionId string) (*entity.Session, error)
	GetByName(name string) (dto.HistoryResponse, error)
}

type historyService struct {
	stateRepo contract.IStateRepository
}

func NewHistoryService(stateRepo contract.IStateRepository) IHistoryService {
	return &historyService{stateRepo: stateRepo}
}

func (s *historyService) GetBySessionId(sessionId string) (*entity.Session, error) {
	state, err := s.stateRepo.Load()
	if err != nil {
		return nil, err
	}
	return state.Sessions[sessionId], nil
}

// GetByName matches a session when either its key or its stored user name
// equals the requested name after trimming and lowercasing.
func (s *historyService) GetByName(name string) (dto.HistoryResponse, error) {
	state, err := s.stateRepo.Load()
	if err != nil {
		return nil, err
	}

	normalized := normalizeName(name)
	out := make(dto.HistoryResponse)
	for sessionId, session := range state.Sessions {
		if normalizeName(sessionId) == normalized || normalizeName(session.UserName) == normalized {
			out[sessionId] = session
		}
	}
	return out, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
