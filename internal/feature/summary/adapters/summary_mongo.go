// Package adapters implements the persistence layer for the summary
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"teamcall_backend/internal/feature/summary/domain"
	"teamcall_backend/internal/feature/summary/domain/entity"
	"teamcall_backend/internal/feature/summary/usecase"
)

// CollectionName is the MongoDB collection backing summaries.
const CollectionName = "ai_summaries"

type summaryMongo struct {
	col *mongo.Collection
}

// NewSummaryMongo creates a summary repository backed by MongoDB.
func NewSummaryMongo(db *mongo.Database) usecase.SummaryRepository {
	return &summaryMongo{col: db.Collection(CollectionName)}
}

var _ usecase.SummaryRepository = (*summaryMongo)(nil)

// Create stores a summary and returns its id.
func (r *summaryMongo) Create(ctx context.Context, s *entity.Summary) (string, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// FindLatest returns the newest summary of a meeting, optionally
// narrowed to a single user.
func (r *summaryMongo) FindLatest(ctx context.Context, meetingID, userID string) (*entity.Summary, error) {
	filter := bson.M{"meetingId": meetingID}
	if userID != "" {
		filter["userId"] = userID
	}

	var s entity.Summary
	err := r.col.FindOne(ctx, filter,
		options.FindOne().SetSort(bson.D{{Key: "generatedAt", Value: -1}}),
	).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindAll returns every summary of a meeting, newest first.
func (r *summaryMongo) FindAll(ctx context.Context, meetingID string) ([]entity.Summary, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"meetingId": meetingID},
		options.Find().SetSort(bson.D{{Key: "generatedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.Summary, 0)
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
