package bootstrap

import (
	"log"

	"intelliject-be/internal/config"
	"intelliject-be/internal/controller"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/internal/repository/unitofwork"
	"intelliject-be/internal/service"
	"intelliject-be/pkg/database"
	"intelliject-be/pkg/embedding"
	"intelliject-be/pkg/extract"
	"intelliject-be/pkg/llm/factory"
	"intelliject-be/pkg/retrieval"

	pktNats "intelliject-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const corpusTopic = "corpus.updated"

type Container struct {
	// Controllers
	SubjectController  controller.ISubjectController
	QuestionController controller.IQuestionController
	MatchController    controller.IMatchController
	UploadController   controller.IUploadController

	// Background services, run from main
	ConsumerService service.IConsumerService

	NatsPublisher *pktNats.Publisher
}

func NewContainer(gateway *database.Gateway, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(gateway)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI collaborators
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	case "openai":
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI)
		log.Printf("[INFO] Using Embedding Provider: OPENAI")
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS is optional: a nil publisher is safe to publish on.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, corpusTopic, sysLogger)
	questionService := service.NewQuestionService(uowFactory, gateway, publisherService, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		corpusTopic,
		questionService,
		gateway.Subjects(),
		natsPub,
		sysLogger,
	)

	matcher := retrieval.NewMatcher(uowFactory, embeddingProvider, llmProvider, sysLogger)
	matcherService := service.NewMatcherService(
		matcher,
		llmProvider,
		extract.NewTextFileExtractor(),
		questionService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SubjectController:  controller.NewSubjectController(questionService),
		QuestionController: controller.NewQuestionController(questionService),
		MatchController:    controller.NewMatchController(matcherService),
		UploadController:   controller.NewUploadController(matcherService, questionService, cfg.App.UploadDir),

		ConsumerService: consumerService,
		NatsPublisher:   natsPub,
	}
}
