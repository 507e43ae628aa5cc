// Package ddbstore reads the challenge document database. It is the
// only package that knows the DynamoDB layout; everything above it
// speaks challenge.Store.
package ddbstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/scoring"
	"github.com/fury1991/my-sport-challenge/standings"
)

type Store struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

var _ challenge.Store = (*Store)(nil)

func NewStore(ddbClient *dynamodb.Client, tableName string) *Store {
	s := &Store{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(s.ddbClient)
	table := db.Table(s.tableName)
	s.table = &table

	return s
}

// ListChallenges returns every challenge that has a details document.
func (s *Store) ListChallenges(ctx context.Context) ([]challenge.Info, error) {
	var rows []detailsRow
	err := s.table.Scan().Filter("'sk' = ?", skDetails).All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("scan challenge details: %w", err)
	}

	infos := make([]challenge.Info, len(rows))
	for i, row := range rows {
		infos[i] = challenge.Info{
			Key:   row.Key,
			Label: row.Label,
		}
	}
	return infos, nil
}

// CurrentChallenge reads the config pointer. A missing pointer is a
// store provisioning error, not an empty dashboard.
func (s *Store) CurrentChallenge(ctx context.Context) (string, error) {
	row := new(currentRow)
	err := s.table.Get("pk", pkConfig).Range("sk", dynamo.Equal, skCurrent).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return "", fmt.Errorf("current challenge pointer is not set")
		}
		return "", fmt.Errorf("get current challenge: %w", err)
	}
	return row.Key, nil
}

// GetMetadata returns the challenge status, or nil when the details
// document is absent. A missing last-update document leaves
// LastUpdate nil.
func (s *Store) GetMetadata(ctx context.Context, challengeKey string) (*challenge.Metadata, error) {
	pk := challengePk(challengeKey)

	details := new(detailsRow)
	err := s.table.Get("pk", pk).Range("sk", dynamo.Equal, skDetails).One(ctx, details)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil // challenge has no metadata
		}
		return nil, fmt.Errorf("get challenge details: %w", err)
	}

	meta := &challenge.Metadata{
		StartDate:  details.StartDate,
		EndDate:    details.EndDate,
		IsComplete: details.IsComplete,
	}

	status := new(metaRow)
	err = s.table.Get("pk", pk).Range("sk", dynamo.Equal, skMeta).One(ctx, status)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return meta, nil // last update unknown
		}
		return nil, fmt.Errorf("get challenge status: %w", err)
	}
	lastUpdate := status.LastUpdate
	meta.LastUpdate = &lastUpdate

	return meta, nil
}

// ListAthletes returns the challenge participants without activities.
func (s *Store) ListAthletes(ctx context.Context, challengeKey string) ([]standings.Athlete, error) {
	var rows []athleteRow
	err := s.table.Get("pk", challengePk(challengeKey)).
		Range("sk", dynamo.BeginsWith, "athlete#").
		All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}

	athletes := make([]standings.Athlete, len(rows))
	for i, row := range rows {
		athletes[i] = standings.Athlete{
			ID:   row.AthleteID,
			Name: row.Name,
		}
	}
	return athletes, nil
}

// ListActivities returns one athlete's complete activity set in sort
// key order. Distances are validated here so a bad record is rejected
// at the boundary instead of flowing into the scores.
func (s *Store) ListActivities(ctx context.Context, challengeKey string, athleteID string) ([]standings.Activity, error) {
	var rows []activityRow
	err := s.table.Get("pk", challengePk(challengeKey)).
		Range("sk", dynamo.BeginsWith, activitySkPrefix(athleteID)).
		All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	activities := make([]standings.Activity, len(rows))
	for i, row := range rows {
		activity, err := decodeActivity(athleteID, row)
		if err != nil {
			return nil, err
		}
		activities[i] = activity
	}
	return activities, nil
}

// decodeActivity turns one store row into a domain activity. A
// negative or non-finite distance is rejected here, at the boundary,
// so it can never flow into the scores.
func decodeActivity(athleteID string, row activityRow) (standings.Activity, error) {
	if err := scoring.ValidateDistance(row.Distance); err != nil {
		return standings.Activity{}, challenge.ErrInvalidDistance().
			SetDebug(fmt.Errorf("athlete %s, item %s: %w", athleteID, row.Sk, err))
	}
	return standings.Activity{
		Date:     row.Date,
		Kind:     scoring.ParseKind(row.Kind),
		Distance: row.Distance,
	}, nil
}
