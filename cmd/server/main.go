package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/Dhani2612/RPL-PupukKu/internal/adapter/grpc"
	pupukkuv1 "github.com/Dhani2612/RPL-PupukKu/internal/adapter/grpc/pupukku/v1"
	"github.com/Dhani2612/RPL-PupukKu/internal/adapter/repository/postgres"
	"github.com/Dhani2612/RPL-PupukKu/internal/config"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/approval"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/grant"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/submission"
)

func main() {
	configPath := pflag.String("config", "", "path to YAML config file (optional)")
	listenAddr := pflag.String("listen", "", "listen address, overrides config")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *listenAddr != "" {
		cfg.Listen = *listenAddr
	}

	// 1. Setup Database
	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(cfg.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 2. Initialize Repositories (Postgres)
	quotaRepo := postgres.NewQuotaRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	recipientRepo := postgres.NewRecipientRepository(db)
	distributorRepo := postgres.NewDistributorRepository(db)
	decisionStore := postgres.NewDecisionStore(db, requestRepo)

	// 3. Initialize Services (Use Cases)
	grantService := grant.NewService(quotaRepo, recipientRepo)
	submissionService := submission.NewService(recipientRepo, distributorRepo, quotaRepo, requestRepo)
	coordinator := approval.NewCoordinator(requestRepo, decisionStore)
	if cfg.DecisionTimeout > 0 {
		coordinator.AcquireTimeout = cfg.DecisionTimeout.Std()
	}

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.APIToken)),
	)

	grpcAdapter := grpcadapter.NewServer(grantService, submissionService, coordinator)
	pupukkuv1.RegisterPupukKuServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Listen, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", cfg.Listen)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
