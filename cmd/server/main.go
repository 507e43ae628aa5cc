package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/conf"
	"github.com/fury1991/my-sport-challenge/ddbstore"
	"github.com/fury1991/my-sport-challenge/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	cfg, err := conf.Load(os.Getenv("SPORT_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AwsRegion),
	)
	if err != nil {
		slog.Error("unable to load AWS SDK config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	store := ddbstore.NewStore(ddbClient, cfg.DdbTableName)
	challengeSrvc := challenge.NewService(store)
	httpServer := http.NewHttpServer(challengeSrvc, cfg.AllowedOrigins)

	log.Printf("Starting server on %s", cfg.Address)
	err = httpServer.Start(cfg.Address)
	log.Printf("Server stopped with error: %v", err)
}
