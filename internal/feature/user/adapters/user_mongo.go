// Package adapters provides the repository implementations for the
// user feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"teamcall_backend/internal/feature/user/domain"
	"teamcall_backend/internal/feature/user/domain/entity"
	"teamcall_backend/internal/feature/user/usecase"
)

// CollectionName is the document collection holding user records.
const CollectionName = "users"

// userMongo implements the UserRepository interface on the document
// store.
type userMongo struct {
	collection *mongo.Collection
}

// Compile-time check that userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a new userMongo bound to the given database.
func NewUserMongo(db *mongo.Database) *userMongo {
	return &userMongo{collection: db.Collection(CollectionName)}
}

// Create inserts the user with store-assigned timestamps and returns
// the new document id.
func (r *userMongo) Create(ctx context.Context, u *entity.User) (string, error) {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// FindByID retrieves a user by document id.
// Returns domain.ErrUserNotFound when the id is malformed or absent.
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var u entity.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves the single user matching the normalized email.
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll retrieves every user record.
func (r *userMongo) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []entity.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies a partial $set of the given fields and refreshes
// updatedAt.
func (r *userMongo) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user record.
func (r *userMongo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
