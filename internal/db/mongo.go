package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Users              *mongo.Collection
	Companies          *mongo.Collection
	CaseStudies        *mongo.Collection
	BlogPosts          *mongo.Collection
	ContactRequests    *mongo.Collection
	VerificationTokens *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Users:              db.Collection("users"),
		Companies:          db.Collection("companies"),
		CaseStudies:        db.Collection("case_studies"),
		BlogPosts:          db.Collection("blog_posts"),
		ContactRequests:    db.Collection("contact_requests"),
		VerificationTokens: db.Collection("verification_tokens"),
	}

	return client, cols, nil
}

// NewestFirst is the sort used by time-ordered collections. _id breaks ties
// between records created within the same millisecond.
func NewestFirst() bson.D {
	return bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	}
}

// InsertionOrder sorts by creation time ascending, the order records were written.
func InsertionOrder() bson.D {
	return bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	}
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	createdAt := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	for _, col := range []*mongo.Collection{cols.CaseStudies, cols.BlogPosts, cols.ContactRequests, cols.Users} {
		if _, err := col.Indexes().CreateOne(indexTimeout, createdAt); err != nil {
			return err
		}
	}

	_, err := cols.Users.Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = cols.VerificationTokens.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "identifier", Value: 1}},
		},
		{
			// Expired tokens are purged by the server.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return err
	}

	return nil
}
