package main

import (
	"context"
	"log"

	"tenderdesk-be/internal/bootstrap"
	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/server"
	"tenderdesk-be/internal/tracer"
	"tenderdesk-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Activity Consumer...")
		if err := container.ActivityConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if err := container.SnapshotService.Start(context.Background()); err != nil {
		log.Printf("Snapshot Scheduler Error: %v", err)
	}
	defer container.SnapshotService.Destroy()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
