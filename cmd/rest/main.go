package main

import (
	"context"
	"log"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/bootstrap"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/config"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/server"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/tracer"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/database"
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
	defer container.SysLogger.Sync()
	if container.NatsPublisher != nil {
		defer container.NatsPublisher.Close()
	}

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Mail Dispatch Worker...")
		if err := container.MailConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Mail Worker Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
