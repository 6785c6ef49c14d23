package bootstrap

import (
	"log"
	"time"

	"ai-research-be/internal/config"
	"ai-research-be/internal/controller"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/repository/implementation"
	"ai-research-be/internal/service"
	"ai-research-be/pkg/llm/factory"
	"ai-research-be/pkg/pdf"
	"ai-research-be/pkg/rag"
	"ai-research-be/pkg/retrieval"
)

type Container struct {
	// Controllers
	ResearchController controller.IResearchController
	HistoryController  controller.IHistoryController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Retrieval chain: local corpus first, then the cached network
	// sources in priority order.
	cacheTTL := time.Duration(cfg.Retrieval.CacheTTLSeconds) * time.Second
	retriever := retrieval.NewRetriever(
		sysLogger,
		retrieval.NewLocalSource(cfg.Retrieval.CorpusDir),
		retrieval.NewCachedSource(retrieval.NewWikipediaSource(), cacheTTL),
		retrieval.NewCachedSource(retrieval.NewDuckDuckGoSource(), cacheTTL),
	)

	summarizer := rag.NewSummarizer(llmProvider)
	planner := rag.NewPlanner(llmProvider)

	// Persistence
	stateRepo := implementation.NewFileStateRepository(cfg.State.FilePath)

	// Services
	researchService := service.NewResearchService(
		stateRepo,
		retriever,
		summarizer,
		planner,
		cfg.Retrieval.TopK,
		sysLogger,
	)
	historyService := service.NewHistoryService(stateRepo)
	exportService := service.NewExportService(historyService, pdf.NewExporter())

	return &Container{
		ResearchController: controller.NewResearchController(researchService),
		HistoryController:  controller.NewHistoryController(historyService, exportService),
		Logger:             sysLogger,
	}
}
