package bootstrap

import (
	"log"
	"os"
	"time"

	"ai-docauthor-be/internal/config"
	"ai-docauthor-be/internal/controller"
	"ai-docauthor-be/internal/pkg/logger"
	"ai-docauthor-be/internal/repository/memory"
	"ai-docauthor-be/internal/service"
	"ai-docauthor-be/internal/websocket"
	"ai-docauthor-be/pkg/ai/factory"
	"ai-docauthor-be/pkg/docgen/classifier"
	"ai-docauthor-be/pkg/docgen/evaluation"
	"ai-docauthor-be/pkg/docgen/orchestrator"
	"ai-docauthor-be/pkg/docgen/planner"
	"ai-docauthor-be/pkg/docgen/section"
	"ai-docauthor-be/pkg/events"
	"ai-docauthor-be/pkg/ingestion"
	"ai-docauthor-be/pkg/retrieval"
	"ai-docauthor-be/pkg/store"
)

type Container struct {
	// Controllers
	DocumentController   controller.IDocumentController
	PlanController       controller.IPlanController
	SectionController    controller.ISectionController
	EvaluationController controller.IEvaluationController
	ResourceController   controller.IResourceController
	PreviewController    controller.IPreviewController

	// WebSockets & progress delivery
	WebSocketHub *websocket.Hub
	ProgressBus  *events.Bus

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	bus := events.NewBus()

	// 3. AI Provider
	provider, err := factory.NewProvider(cfg.Ai.Provider, factory.Credentials{
		APIKey:  cfg.Ai.APIKey,
		Region:  cfg.Ai.Region,
		ModelID: cfg.Ai.ModelID,
		BaseURL: cfg.Ai.BaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize AI provider: %v", err)
	}
	log.Printf("[INFO] Using AI Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.ModelID)

	// 4. External collaborators
	retrievalClient := retrieval.NewClient(cfg.Doc.BaseURL)
	ingestionClient := ingestion.NewClient(cfg.Doc.BaseURL)

	// 5. In-memory session storage
	documentRepo := memory.NewDocumentRepository(4 * time.Hour)

	// 6. Preview store
	previewTTL := time.Duration(cfg.Preview.TTLMinutes) * time.Minute
	var previewStore store.PreviewStore
	if cfg.Preview.Backend == "redis" {
		redisStore, err := store.NewRedisPreviewStore(cfg.Preview.RedisURL, previewTTL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis, falling back to memory previews: %v", err)
			previewStore = store.NewMemoryPreviewStore(previewTTL)
		} else {
			previewStore = redisStore
		}
	} else {
		previewStore = store.NewMemoryPreviewStore(previewTTL)
	}

	// 7. Generation pipelines
	cls := classifier.New(provider, pipelineLogger)
	docPlanner := planner.New(provider, cls, pipelineLogger)
	sectionGenerator := section.NewGenerator(provider, retrievalClient, pipelineLogger)
	evaluator := evaluation.New(provider, sectionGenerator, pipelineLogger)
	orch := orchestrator.New(sectionGenerator, evaluator, bus, pipelineLogger)

	// 8. WebSocket Hub + progress relay
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	// 9. Services
	documentService := service.NewDocumentService(documentRepo, cfg.Ai.DefaultTemperature, cfg.Ai.DefaultLength)
	planService := service.NewPlanService(documentRepo, docPlanner)
	sectionService := service.NewSectionService(documentRepo, sectionGenerator, orch, cfg.Ai.GenerationPasses, sysLogger)
	evaluationService := service.NewEvaluationService(documentRepo, evaluator, orch, sysLogger)
	resourceService := service.NewResourceService(documentRepo, ingestionClient, sysLogger)
	previewService := service.NewPreviewService(previewStore, cfg.App.BaseURL)

	return &Container{
		DocumentController:   controller.NewDocumentController(documentService),
		PlanController:       controller.NewPlanController(planService),
		SectionController:    controller.NewSectionController(sectionService),
		EvaluationController: controller.NewEvaluationController(evaluationService),
		ResourceController:   controller.NewResourceController(resourceService),
		PreviewController:    controller.NewPreviewController(previewService),

		WebSocketHub: wsHub,
		ProgressBus:  bus,

		Logger: sysLogger,
	}
}
