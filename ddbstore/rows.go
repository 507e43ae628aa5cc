package ddbstore

import (
	"fmt"
	"time"
)

// Single-table layout. Every challenge is one item collection under
// pk "challenge#<key>"; the sort key selects the document kind:
//
//	details#                      challenge label and date range
//	meta#                         last-update status document (optional)
//	athlete#<athleteID>           one participant
//	activity#<athleteID>#<seq>    one activity record
//
// A single "config#"/"current#" item points at the challenge the
// dashboard opens with. Activity sort keys are zero-padded sequence
// numbers, so a query returns same-day activities in a stable order.
const (
	skDetails = "details#"
	skMeta    = "meta#"
	skCurrent = "current#"

	pkConfig = "config#"
)

func challengePk(challengeKey string) string {
	return fmt.Sprintf("challenge#%s", challengeKey)
}

func activitySkPrefix(athleteID string) string {
	return fmt.Sprintf("activity#%s#", athleteID)
}

type detailsRow struct {
	Pk         string    `dynamo:"pk,hash"`
	Sk         string    `dynamo:"sk,range"`
	Key        string    `dynamo:"challenge_key"`
	Label      string    `dynamo:"label"`
	StartDate  time.Time `dynamo:"start_date"`
	EndDate    time.Time `dynamo:"end_date"`
	IsComplete bool      `dynamo:"is_complete"`
}

type metaRow struct {
	Pk         string    `dynamo:"pk,hash"`
	Sk         string    `dynamo:"sk,range"`
	LastUpdate time.Time `dynamo:"last_update"`
}

type currentRow struct {
	Pk  string `dynamo:"pk,hash"`
	Sk  string `dynamo:"sk,range"`
	Key string `dynamo:"challenge_key"`
}

type athleteRow struct {
	Pk        string `dynamo:"pk,hash"`
	Sk        string `dynamo:"sk,range"`
	AthleteID string `dynamo:"athlete_id"`
	Name      string `dynamo:"name"`
}

type activityRow struct {
	Pk       string    `dynamo:"pk,hash"`
	Sk       string    `dynamo:"sk,range"`
	Date     time.Time `dynamo:"date"`
	Kind     string    `dynamo:"kind"`
	Distance float64   `dynamo:"distance"` // km
}
