// Command seed provisions a demo dataset: two challenges with a
// handful of athletes and activities, plus the current-challenge
// pointer. Intended for local development against a fresh table.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/fury1991/my-sport-challenge/conf"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	confPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := conf.Load(*confPath)
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

	w := newTableWriter(ddbClient, cfg.DdbTableName)

	items := demoItems()
	if err := w.putItems(context.Background(), items...); err != nil {
		log.Fatalf("failed to seed table: %v", err)
	}
	log.Printf("Seeded %d items into %s", len(items), cfg.DdbTableName)
}

func demoItems() []ddbItem {
	spring := "fruehjahr-2024"
	autumn := "herbst-2024"

	items := []ddbItem{
		detailsItem{
			Key:       spring,
			Label:     "Frühjahrs-Challenge 2024",
			StartDate: date(2024, 3, 1),
			EndDate:   date(2024, 5, 31),
			Complete:  true,
		},
		detailsItem{
			Key:       autumn,
			Label:     "Herbst-Challenge 2024",
			StartDate: date(2024, 9, 5),
			EndDate:   date(2024, 11, 30),
		},
		metaItem{Challenge: autumn, LastUpdate: time.Now()},
		currentItem{Key: autumn},
	}

	type seedActivity struct {
		day      time.Time
		kind     string
		distance float64
	}
	athletes := []struct {
		name       string
		activities []seedActivity
	}{
		{"Anna", []seedActivity{
			{date(2024, 9, 6), "laufen", 5},
			{date(2024, 9, 10), "fahrrad", 20},
		}},
		{"Ben", []seedActivity{
			{date(2024, 9, 6), "fahrrad", 15},
			{date(2024, 9, 6), "laufen", 3},
			{date(2024, 9, 12), "laufen", 8.4},
		}},
		{"Clara", []seedActivity{
			{date(2024, 9, 8), "schwimmen", 2},
			{date(2024, 9, 9), "laufen", 10},
		}},
	}

	for _, a := range athletes {
		athleteID := uuid.NewString()
		items = append(items, athleteItem{
			Challenge: autumn,
			AthleteID: athleteID,
			Name:      a.name,
		})
		for seq, act := range a.activities {
			items = append(items, activityItem{
				Challenge: autumn,
				AthleteID: athleteID,
				Seq:       seq + 1,
				Date:      act.day,
				Kind:      act.kind,
				Distance:  act.distance,
			})
		}
	}

	return items
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
