package main

import (
	"fmt"
	"maps"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ddbItem is any row that knows its own pk/sk. Key attributes are
// merged into the marshalled item, so the row structs only carry
// payload fields.
type ddbItem interface {
	GetKey() map[string]types.AttributeValue
}

func key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
}

type detailsItem struct {
	Key       string    `dynamodbav:"challenge_key"`
	Label     string    `dynamodbav:"label"`
	StartDate time.Time `dynamodbav:"start_date"`
	EndDate   time.Time `dynamodbav:"end_date"`
	Complete  bool      `dynamodbav:"is_complete"`
}

func (i detailsItem) GetKey() map[string]types.AttributeValue {
	return key(fmt.Sprintf("challenge#%s", i.Key), "details#")
}

type metaItem struct {
	Challenge  string    `dynamodbav:"-"`
	LastUpdate time.Time `dynamodbav:"last_update"`
}

func (i metaItem) GetKey() map[string]types.AttributeValue {
	return key(fmt.Sprintf("challenge#%s", i.Challenge), "meta#")
}

type currentItem struct {
	Key string `dynamodbav:"challenge_key"`
}

func (i currentItem) GetKey() map[string]types.AttributeValue {
	return key("config#", "current#")
}

type athleteItem struct {
	Challenge string `dynamodbav:"-"`
	AthleteID string `dynamodbav:"athlete_id"`
	Name      string `dynamodbav:"name"`
}

func (i athleteItem) GetKey() map[string]types.AttributeValue {
	return key(
		fmt.Sprintf("challenge#%s", i.Challenge),
		fmt.Sprintf("athlete#%s", i.AthleteID),
	)
}

type activityItem struct {
	Challenge string    `dynamodbav:"-"`
	AthleteID string    `dynamodbav:"-"`
	Seq       int       `dynamodbav:"-"`
	Date      time.Time `dynamodbav:"date"`
	Kind      string    `dynamodbav:"kind"`
	Distance  float64   `dynamodbav:"distance"`
}

func (i activityItem) GetKey() map[string]types.AttributeValue {
	return key(
		fmt.Sprintf("challenge#%s", i.Challenge),
		fmt.Sprintf("activity#%s#%06d", i.AthleteID, i.Seq),
	)
}

// marshalItem marshals the item and merges in its key attributes.
func marshalItem(item ddbItem) (map[string]types.AttributeValue, error) {
	marshalled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}
	maps.Copy(marshalled, item.GetKey())
	return marshalled, nil
}
