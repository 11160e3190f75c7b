package store

// Repository implementation (MongoDB)

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

type CategoryMongo struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewCategoryMongo(db *mongo.Database) *CategoryMongo {
	return &CategoryMongo{
		coll:   db.Collection(CollCategories),
		tracer: otel.Tracer("quickreads/store"),
	}
}

func (r *CategoryMongo) List(ctx context.Context) ([]entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "categories.list")
	defer span.End()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []entity.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *CategoryMongo) GetByName(ctx context.Context, name string) (entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "categories.get_by_name",
		trace.WithAttributes(attribute.String("category.name", name)),
	)
	defer span.End()

	var doc entity.Document
	err := r.coll.FindOne(ctx, bson.M{"category": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *CategoryMongo) Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error) {
	ctx, span := r.tracer.Start(ctx, "categories.create")
	defer span.End()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return entity.InsertAck{}, err
	}
	return insertAck(res), nil
}
