// Package adapters implements the persistence layer for the
// participant feature.
package adapters

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"teamcall_backend/internal/feature/participant/domain"
	"teamcall_backend/internal/feature/participant/domain/entity"
	"teamcall_backend/internal/feature/participant/usecase"
)

// CollectionName is the MongoDB collection backing participants.
const CollectionName = "participants"

type participantMongo struct {
	col *mongo.Collection
}

// NewParticipantMongo creates a participant repository backed by
// MongoDB.
func NewParticipantMongo(db *mongo.Database) usecase.ParticipantRepository {
	return &participantMongo{col: db.Collection(CollectionName)}
}

var _ usecase.ParticipantRepository = (*participantMongo)(nil)

// Upsert writes the membership keyed by its document id, replacing any
// earlier record for the same meeting and user.
func (r *participantMongo) Upsert(ctx context.Context, p *entity.Participant) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": p.ID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}

// FindByMeeting returns all memberships of a meeting.
func (r *participantMongo) FindByMeeting(ctx context.Context, meetingID string) ([]entity.Participant, error) {
	cur, err := r.col.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return nil, err
	}

	participants := make([]entity.Participant, 0)
	if err := cur.All(ctx, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// Delete removes a single membership.
func (r *participantMongo) Delete(ctx context.Context, meetingID, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": entity.DocumentID(meetingID, userID)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}
