package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Harsh-986/PrepWise/pkg/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InterviewRepository struct {
	col *mongo.Collection
}

// Create inserts the interview document and returns its id as a hex string,
// which is the interviewId the client navigates to.
func (r InterviewRepository) Create(ctx context.Context, iv *model.Interview) (string, error) {
	iv.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, iv)
	if err != nil {
		return "", fmt.Errorf("insert interview: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	iv.ID = oid
	return oid.Hex(), nil
}

func (r InterviewRepository) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Normalize: a 24-char id with bad characters reports a hex decode
		// error, not ErrInvalidHex. Callers only care that the id is bogus.
		return nil, fmt.Errorf("invalid interview id %q: %w", id, primitive.ErrInvalidHex)
	}

	var iv model.Interview
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

// ListByUser returns the user's interviews, newest first.
func (r InterviewRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]model.Interview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer cur.Close(ctx)

	out := []model.Interview{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode interviews: %w", err)
	}
	return out, nil
}

// SmokeTest exercises a write/read/delete round trip against a throwaway
// document, mirroring what the connectivity test endpoint reports.
func (r InterviewRepository) SmokeTest(ctx context.Context) error {
	doc := bson.M{"test": true, "timestamp": time.Now().UTC()}
	res, err := r.col.Database().Collection("test").InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("smoke write: %w", err)
	}
	if _, err := r.col.Database().Collection("test").DeleteOne(ctx, bson.M{"_id": res.InsertedID}); err != nil {
		return fmt.Errorf("smoke cleanup: %w", err)
	}
	return nil
}
