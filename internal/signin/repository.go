package signin

import (
	"context"
	"errors"

	"vitrine-backend/internal/memstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	// Replace stores token as the only pending token for its identifier.
	Replace(ctx context.Context, token VerificationToken) error
	Find(ctx context.Context, identifier string) (token VerificationToken, found bool, err error)
	// ReserveAttempt counts one verification attempt against the token and
	// returns it. It reports false once MaxVerifyAttempts have been used or
	// the token is gone.
	ReserveAttempt(ctx context.Context, id string) (token VerificationToken, ok bool, err error)
	// Delete reports whether a token was removed by this call.
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Replace(ctx context.Context, token VerificationToken) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"identifier": token.Identifier}); err != nil {
		return err
	}
	_, err := r.col.InsertOne(ctx, token)
	return err
}

func (r *MongoRepository) Find(ctx context.Context, identifier string) (VerificationToken, bool, error) {
	var token VerificationToken
	if err := r.col.FindOne(ctx, bson.M{"identifier": identifier}).Decode(&token); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return VerificationToken{}, false, nil
		}
		return VerificationToken{}, false, err
	}
	return token, true, nil
}

func (r *MongoRepository) ReserveAttempt(ctx context.Context, id string) (VerificationToken, bool, error) {
	filter := bson.M{"_id": id, "attempts": bson.M{"$lt": MaxVerifyAttempts}}
	update := bson.M{"$inc": bson.M{"attempts": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var token VerificationToken
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&token); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return VerificationToken{}, false, nil
		}
		return VerificationToken{}, false, err
	}
	return token, true, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type MemoryRepository struct {
	tokens *memstore.Collection[VerificationToken]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: memstore.New[VerificationToken]()}
}

func (r *MemoryRepository) Replace(_ context.Context, token VerificationToken) error {
	r.tokens.DeleteWhere(func(t VerificationToken) bool { return t.Identifier == token.Identifier })
	return r.tokens.Insert(token.ID, token)
}

func (r *MemoryRepository) Find(_ context.Context, identifier string) (VerificationToken, bool, error) {
	token, ok := r.tokens.Find(func(t VerificationToken) bool { return t.Identifier == identifier })
	return token, ok, nil
}

func (r *MemoryRepository) ReserveAttempt(_ context.Context, id string) (VerificationToken, bool, error) {
	token, ok := r.tokens.Update(id, func(t VerificationToken) (VerificationToken, bool) {
		if t.Attempts >= MaxVerifyAttempts {
			return t, false
		}
		t.Attempts++
		return t, true
	})
	return token, ok, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.tokens.Delete(id), nil
}
