package blogposts

import (
	"context"
	"errors"

	"vitrine-backend/internal/db"
	"vitrine-backend/internal/memstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, post BlogPost) error
	List(ctx context.Context) ([]BlogPost, error)
	GetByID(ctx context.Context, id string) (post BlogPost, found bool, err error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, post BlogPost) error {
	_, err := r.col.InsertOne(ctx, post)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]BlogPost, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(db.NewestFirst()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]BlogPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (BlogPost, bool, error) {
	var post BlogPost
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return BlogPost{}, false, nil
	}
	if err != nil {
		return BlogPost{}, false, err
	}
	return post, true, nil
}

type MemoryRepository struct {
	posts *memstore.Collection[BlogPost]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: memstore.New[BlogPost]()}
}

func (r *MemoryRepository) Create(_ context.Context, post BlogPost) error {
	return r.posts.Insert(post.ID, post)
}

func (r *MemoryRepository) List(_ context.Context) ([]BlogPost, error) {
	return r.posts.Descending(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (BlogPost, bool, error) {
	post, ok := r.posts.Get(id)
	return post, ok, nil
}
