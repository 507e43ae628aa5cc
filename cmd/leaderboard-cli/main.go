package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/conf"
	"github.com/fury1991/my-sport-challenge/ddbstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	cfg, err := conf.Load(os.Getenv("SPORT_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AwsRegion),
	)
	if err != nil {
		log.Fatalf("unable to load AWS SDK config: %v", err)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	store := ddbstore.NewStore(ddbClient, cfg.DdbTableName)
	challengeSrvc := challenge.NewService(store)

	p := tea.NewProgram(initialModel(challengeSrvc))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
