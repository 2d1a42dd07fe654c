package main

import (
	"context"
	"log"

	"intelliject-be/internal/bootstrap"
	"intelliject-be/internal/config"
	"intelliject-be/internal/model"
	"intelliject-be/internal/server"
	"intelliject-be/internal/tracer"
	"intelliject-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Resolve the persistence gateway (Postgres -> SQLite -> flat file)
	subjects := database.NewSubjectsFile(cfg.Corpus.SubjectsFilePath, cfg.Corpus.DefaultSubjects)
	gateway := database.Open(database.Options{
		PrimaryDSN: cfg.Database.Connection,
		SQLitePath: cfg.Database.SQLitePath,
		Subjects:   subjects,
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(&model.PYQ{}, &model.UploadHistory{})
		},
	})
	log.Printf("Persistence mode: %s", gateway.Mode())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gateway, cfg)
	defer container.NatsPublisher.Close()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize and run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
