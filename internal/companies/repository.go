package companies

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
	Create(ctx context.Context, company Company) error
	// List returns companies in the order they were inserted.
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (company Company, found bool, err error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, company Company) error {
	_, err := r.col.InsertOne(ctx, company)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]Company, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(db.InsertionOrder()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := make([]Company, 0)
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Company, bool, error) {
	var company Company
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return Company{}, false, nil
	case err != nil:
		return Company{}, false, err
	}
	return company, true, nil
}

type MemoryRepository struct {
	companies *memstore.Collection[Company]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{companies: memstore.New[Company]()}
}

func (r *MemoryRepository) Create(_ context.Context, company Company) error {
	return r.companies.Insert(company.ID, company)
}

func (r *MemoryRepository) List(_ context.Context) ([]Company, error) {
	return r.companies.Ascending(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (Company, bool, error) {
	company, ok := r.companies.Get(id)
	return company, ok, nil
}
