package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/todoapp/api/internal/core/domain"
)

// findPage runs a count plus a skip/limit query sorted newest first and
// decodes the matching documents into a page envelope.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page, limit int64) (*domain.Page[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &domain.Page[T]{Items: items, Page: page, Pages: pages, Total: total}, nil
}
