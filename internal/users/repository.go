package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"vitrine-backend/internal/db"
	"vitrine-backend/internal/memstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	Create(ctx context.Context, user User) error
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (user User, found bool, err error)
	GetByEmail(ctx context.Context, email string) (user User, found bool, err error)
	MarkEmailVerified(ctx context.Context, id string, at time.Time) (User, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, user User) error {
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]User, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(db.NewestFirst()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]User, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (User, bool, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (User, bool, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (User, bool, error) {
	var user User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, false, nil
		}
		return User{}, false, err
	}
	return user, true, nil
}

func (r *MongoRepository) MarkEmailVerified(ctx context.Context, id string, at time.Time) (User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"email_verified": at, "updated_at": at}}

	var updated User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return User{}, err
	}
	return updated, nil
}

type MemoryRepository struct {
	users *memstore.Collection[User]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: memstore.New[User]()}
}

func (r *MemoryRepository) Create(_ context.Context, user User) error {
	if _, taken := r.users.Find(sameEmail(user.Email)); taken {
		return ErrEmailTaken
	}
	return r.users.Insert(user.ID, user)
}

func (r *MemoryRepository) List(_ context.Context) ([]User, error) {
	return r.users.Descending(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (User, bool, error) {
	user, ok := r.users.Get(id)
	return user, ok, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (User, bool, error) {
	user, ok := r.users.Find(sameEmail(email))
	return user, ok, nil
}

func (r *MemoryRepository) MarkEmailVerified(_ context.Context, id string, at time.Time) (User, error) {
	user, ok := r.users.Update(id, func(u User) (User, bool) {
		u.EmailVerified = &at
		u.UpdatedAt = at
		return u, true
	})
	if !ok {
		return User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func sameEmail(email string) func(User) bool {
	return func(u User) bool { return strings.EqualFold(u.Email, email) }
}
