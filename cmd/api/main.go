package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/config"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/dynamo"
	jwtinfra "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/jwt"
	s3infra "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/s3"
	snsinfra "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/sns"
	transporthttp "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 document store.
	s3Client := s3infra.NewClient(cfg)
	documents := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SNS content fan-out (optional — graceful fallback).
	var events snsinfra.Publisher
	if cfg.SNSContentTopicARN != "" {
		if p, err := snsinfra.NewPublisher(cfg); err == nil {
			events = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		DecisionRepo: dynamo.NewDecisionRepo(dynamoClient, cfg.DynamoTables.Decisions),
		Documents:    documents,
		Events:       events,
		JWTProvider:  jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
