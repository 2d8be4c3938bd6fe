package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// UserRepository is the MongoDB-backed UserStore.
//
// Cart mutations use $inc at the storage layer instead of replacing
// the whole document, so two concurrent mutations for the same user
// can no longer overwrite each other.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{col: col}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveStoreOp("user.find_by_email", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	defer metrics.ObserveStoreOp("user.find_by_id", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	defer metrics.ObserveStoreOp("user.create", time.Now())

	res, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) IncrementCartItem(ctx context.Context, id, itemID string) error {
	defer metrics.ObserveStoreOp("user.inc_cart", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	// $inc creates a missing key with the delta, which matches
	// treating an absent entry as zero.
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"cartData." + itemID: 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) DecrementCartItem(ctx context.Context, id, itemID string) error {
	defer metrics.ObserveStoreOp("user.dec_cart", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	// The filter guards the floor: the decrement only matches while
	// the quantity is above zero, so it can never go negative.
	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "cartData." + itemID: bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"cartData." + itemID: -1}},
	)
	return err
}
