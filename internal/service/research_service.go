package service

import (
	"context"
	"time"

	"ai-research-be/internal/constant"
	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/repository/contract"
	"ai-research-be/pkg/rag"
	"ai-research-be/pkg/retrieval"

	"github.com/google/uuid"
)

// IResearchService runs one full research cycle: optional retrieval,
// summarization, conditional planning and history persistence.
type IResearchService interface {
	Run(ctx context.Context, request *dto.RunRequest) (*dto.RunResponse, error)
}

type researchService struct {
	stateRepo  contract.IStateRepository
	retriever  *retrieval.Retriever
	summarizer *rag.Summarizer
	planner    *rag.Planner
	topK       int
	log        logger.ILogger
}

func NewResearchService(
	stateRepo contract.IStateRepository,
	retriever *retrieval.Retriever,
	summarizer *rag.Summarizer,
	planner *rag.Planner,
	topK int,
	log logger.ILogger,
) IResearchService {
	if topK <= 0 {
		topK = constant.DefaultTopK
	}
	return &researchService{
		stateRepo:  stateRepo,
		retriever:  retriever,
		summarizer: summarizer,
		planner:    planner,
		topK:       topK,
		log:        log,
	}
}

func (s *researchService) Run(ctx context.Context, request *dto.RunRequest) (*dto.RunResponse, error) {
	sessionId := request.SessionId

	// The prior summary gives the session its one-step memory window.
	priorState, err := s.stateRepo.Load()
	if err != nil {
		return nil, err
	}
	var priorContext string
	if existing, ok := priorState.Sessions[sessionId]; ok {
		priorContext = existing.LastSummary
	}

	// Chat mode bypasses retrieval entirely; otherwise retrieval
	// degradation is silent and can only shrink the document set.
	var docs []entity.Document
	if !request.ChatMode {
		docs = s.retriever.Retrieve(ctx, request.Query, s.topK)
	}

	// A summarizer failure aborts the run here, before anything is
	// persisted.
	result, err := s.summarizer.Summarize(ctx, request.Query, docs, priorContext, request.ChatMode)
	if err != nil {
		s.log.Error("research", "summarization failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	var plan *entity.Plan
	if rag.HasPlanningIntent(request.Query) {
		plan, err = s.planner.Plan(ctx, result.Summary)
		if err != nil {
			s.log.Error("research", "planning failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			return nil, err
		}
	}

	entry := entity.HistoryEntry{
		Id:        uuid.New(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Query:     request.Query,
		Docs:      documentRefs(docs),
		Summary:   result.Summary,
		Plan:      plan,
		Mode:      result.Mode,
	}

	var sessionName string
	_, err = s.stateRepo.Update(func(state *entity.State) error {
		session := state.SessionFor(sessionId)
		if request.UserName != "" {
			// Last writer wins, no per-field merge.
			session.UserName = request.UserName
		}
		entry.User = entity.UserMeta{Name: session.UserName}
		session.History = append(session.History, entry)
		session.LastSummary = result.Summary
		sessionName = session.UserName
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("research", "run completed", map[string]interface{}{
		"session_id": sessionId,
		"mode":       result.Mode,
		"docs":       len(docs),
		"planned":    plan != nil,
	})

	response := &dto.RunResponse{
		SessionId:   sessionId,
		SessionName: sessionName,
		Summary:     result.Summary,
		Docs:        make([]dto.DocumentResponse, len(docs)),
		Mode:        result.Mode,
	}
	for i, d := range docs {
		response.Docs[i] = dto.DocumentResponseFrom(d)
	}
	if plan != nil {
		response.Plan = &dto.PlanResponse{Plan: plan.Plan}
	}
	return response, nil
}

// documentRefs drops the document text on purpose: history keeps only the
// reference, the live response keeps the full document.
func documentRefs(docs []entity.Document) []entity.DocumentRef {
	refs := make([]entity.DocumentRef, len(docs))
	for i, d := range docs {
		refs[i] = entity.DocumentRef{Id: d.Id, Title: d.Title, Url: d.Url}
	}
	return refs
}
