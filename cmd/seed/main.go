package main

import (
	"context"
	"log"

	"intelliject-be/internal/config"
	"intelliject-be/internal/model"
	"intelliject-be/internal/pkg/logger"
	"intelliject-be/internal/repository/unitofwork"
	"intelliject-be/internal/service"
	"intelliject-be/pkg/database"
	"intelliject-be/pkg/ingest"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// Seeds the question store from per-subject JSON files and regenerates
// the flat subjects file. Each subject's corpus is replaced wholesale, so
// re-running the seed is safe.
func main() {
	cfg := config.Load()

	subjects := database.NewSubjectsFile(cfg.Corpus.SubjectsFilePath, cfg.Corpus.DefaultSubjects)
	gateway := database.Open(database.Options{
		PrimaryDSN: cfg.Database.Connection,
		SQLitePath: cfg.Database.SQLitePath,
		Subjects:   subjects,
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(&model.PYQ{}, &model.UploadHistory{})
		},
	})
	if gateway.Mode() == database.ModeFlatFile {
		log.Fatal("No relational backend reachable; nothing to seed")
	}
	log.Printf("Persistence mode: %s", gateway.Mode())

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisher := service.NewPublisherService(pubSub, "corpus.updated", sysLogger)
	questionService := service.NewQuestionService(
		unitofwork.NewRepositoryFactory(gateway),
		gateway,
		publisher,
		sysLogger,
	)

	files, err := ingest.DiscoverSubjectFiles(cfg.Corpus.SubjectsDir)
	if err != nil {
		log.Fatalf("Failed to scan subjects directory %s: %v", cfg.Corpus.SubjectsDir, err)
	}
	if len(files) == 0 {
		log.Printf("No subject files found under %s", cfg.Corpus.SubjectsDir)
	}

	ctx := context.Background()
	for subject, path := range files {
		questions, err := ingest.LoadSubjectFile(path, subject)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}

		result := questionService.ReplaceSubject(ctx, subject, questions)
		if result.Outcome != service.OutcomeOK {
			log.Printf("Failed to seed %s (%s)", subject, result.Outcome)
			continue
		}
		log.Printf("Seeded %s: %d questions", subject, result.Stored)
	}

	listing := questionService.ListSubjects(ctx)
	if err := subjects.Write(listing.Subjects); err != nil {
		log.Printf("Failed to write subjects file: %v", err)
	} else {
		log.Printf("Subjects file updated with %d subjects", len(listing.Subjects))
	}
}
