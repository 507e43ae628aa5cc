package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableWriter struct {
	ddbClient *dynamodb.Client
	tableName string
}

func newTableWriter(ddbClient *dynamodb.Client, tableName string) *tableWriter {
	return &tableWriter{
		ddbClient: ddbClient,
		tableName: tableName,
	}
}

// putItems writes all items in batches, retrying unprocessed items
// with exponential backoff.
func (w *tableWriter) putItems(ctx context.Context, items ...ddbItem) error {
	const batchSize = 25 // DynamoDB BatchWriteItem limit

	if len(items) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		marshalled, err := marshalItem(item)
		if err != nil {
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: marshalled},
		})
	}

	for i := 0; i < len(writeRequests); i += batchSize {
		end := i + batchSize
		if end > len(writeRequests) {
			end = len(writeRequests)
		}

		batchInput := &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				w.tableName: writeRequests[i:end],
			},
		}

		if err := w.batchWriteWithRetry(ctx, batchInput, 5); err != nil {
			return fmt.Errorf("failed to batch write items: %w", err)
		}

		log.Printf("Successfully put items %d to %d.", i+1, end)
	}

	return nil
}

func (w *tableWriter) batchWriteWithRetry(ctx context.Context, batchInput *dynamodb.BatchWriteItemInput, maxRetries int) error {
	currentRetry := 0
	for {
		resp, err := w.ddbClient.BatchWriteItem(ctx, batchInput)
		if err != nil {
			return err
		}

		if len(resp.UnprocessedItems) == 0 {
			return nil
		}

		unprocessed, exists := resp.UnprocessedItems[w.tableName]
		if !exists || len(unprocessed) == 0 {
			return nil
		}

		if currentRetry >= maxRetries {
			return fmt.Errorf("max retries reached with %d unprocessed items", len(unprocessed))
		}

		backoffDuration := time.Duration(100*(1<<currentRetry)) * time.Millisecond
		log.Printf("Retrying %d unprocessed items after %v...", len(unprocessed), backoffDuration)
		time.Sleep(backoffDuration)

		batchInput.RequestItems[w.tableName] = unprocessed
		currentRetry++
	}
}
