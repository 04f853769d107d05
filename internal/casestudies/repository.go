package casestudies

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
	Create(ctx context.Context, item CaseStudy) error
	List(ctx context.Context) ([]CaseStudy, error)
	GetByID(ctx context.Context, id string) (item CaseStudy, found bool, err error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item CaseStudy) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]CaseStudy, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(db.NewestFirst()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]CaseStudy, 0)
	for cursor.Next(ctx) {
		var item CaseStudy
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

func (r *MongoRepository) GetByID(ctx context.Context, id string) (CaseStudy, bool, error) {
	var item CaseStudy
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CaseStudy{}, false, nil
		}
		return CaseStudy{}, false, err
	}
	return item, true, nil
}

type MemoryRepository struct {
	items *memstore.Collection[CaseStudy]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: memstore.New[CaseStudy]()}
}

func (r *MemoryRepository) Create(_ context.Context, item CaseStudy) error {
	return r.items.Insert(item.ID, item)
}

func (r *MemoryRepository) List(_ context.Context) ([]CaseStudy, error) {
	return r.items.Descending(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (CaseStudy, bool, error) {
	item, ok := r.items.Get(id)
	return item, ok, nil
}
