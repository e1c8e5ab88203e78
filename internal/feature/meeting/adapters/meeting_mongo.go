// Package adapters provides the repository implementations for the
// meeting feature.
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"teamcall_backend/internal/feature/meeting/domain"
	"teamcall_backend/internal/feature/meeting/domain/entity"
	"teamcall_backend/internal/feature/meeting/usecase"
)

// CollectionName is the document collection holding meeting records.
const CollectionName = "meetings"

// meetingMongo implements the MeetingRepository interface on the
// document store.
type meetingMongo struct {
	collection *mongo.Collection
}

// Compile-time check that meetingMongo implements MeetingRepository.
var _ usecase.MeetingRepository = (*meetingMongo)(nil)

// NewMeetingMongo creates a new meetingMongo bound to the given
// database.
func NewMeetingMongo(db *mongo.Database) *meetingMongo {
	return &meetingMongo{collection: db.Collection(CollectionName)}
}

// Create inserts the meeting record.
func (r *meetingMongo) Create(ctx context.Context, m *entity.Meeting) error {
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

// FindByCode retrieves a meeting by its human-facing code.
func (r *meetingMongo) FindByCode(ctx context.Context, code string) (*entity.Meeting, error) {
	var m entity.Meeting
	if err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindAll retrieves every meeting record.
func (r *meetingMongo) FindAll(ctx context.Context) ([]entity.Meeting, error) {
	return r.find(ctx, bson.M{})
}

// FindByCreator retrieves the meetings created by one user.
func (r *meetingMongo) FindByCreator(ctx context.Context, userID string) ([]entity.Meeting, error) {
	return r.find(ctx, bson.M{"createdBy": userID})
}

func (r *meetingMongo) find(ctx context.Context, filter bson.M) ([]entity.Meeting, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var meetings []entity.Meeting
	if err := cur.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Update applies a partial $set of the given fields.
func (r *meetingMongo) Update(ctx context.Context, code string, fields map[string]any) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"code": code}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

// Delete removes the meeting record.
func (r *meetingMongo) Delete(ctx context.Context, code string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}
