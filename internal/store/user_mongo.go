package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

type UserMongo struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{
		coll:   db.Collection(CollUsers),
		tracer: otel.Tracer("quickreads/store"),
	}
}

func (r *UserMongo) List(ctx context.Context) ([]entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "users.list")
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

func (r *UserMongo) Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error) {
	ctx, span := r.tracer.Start(ctx, "users.create")
	defer span.End()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return entity.InsertAck{}, err
	}
	return insertAck(res), nil
}
