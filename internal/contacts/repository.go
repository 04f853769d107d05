package contacts

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
	Create(ctx context.Context, item ContactRequest) error
	List(ctx context.Context) ([]ContactRequest, error)
	// GetByID reports found=false, with a nil error, when no record matches.
	GetByID(ctx context.Context, id string) (item ContactRequest, found bool, err error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item ContactRequest) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]ContactRequest, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(db.NewestFirst()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]ContactRequest, 0)
	for cursor.Next(ctx) {
		var item ContactRequest
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (ContactRequest, bool, error) {
	var item ContactRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ContactRequest{}, false, nil
		}
		return ContactRequest{}, false, err
	}
	return item, true, nil
}

type MemoryRepository struct {
	items *memstore.Collection[ContactRequest]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: memstore.New[ContactRequest]()}
}

func (r *MemoryRepository) Create(_ context.Context, item ContactRequest) error {
	return r.items.Insert(item.ID, item)
}

func (r *MemoryRepository) List(_ context.Context) ([]ContactRequest, error) {
	return r.items.Descending(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (ContactRequest, bool, error) {
	item, ok := r.items.Get(id)
	return item, ok, nil
}
