package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

type BorrowedBookMongo struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewBorrowedBookMongo(db *mongo.Database) *BorrowedBookMongo {
	return &BorrowedBookMongo{
		coll:   db.Collection(CollBorrowedBooks),
		tracer: otel.Tracer("quickreads/store"),
	}
}

func (r *BorrowedBookMongo) List(ctx context.Context, email string) ([]entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "borrowed_books.list")
	defer span.End()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
		span.SetAttributes(attribute.String("borrower.email", email))
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var docs []entity.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *BorrowedBookMongo) GetByID(ctx context.Context, id string) (entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "borrowed_books.get_by_id",
		trace.WithAttributes(attribute.String("borrowed.id", id)),
	)
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc entity.Document
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *BorrowedBookMongo) Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error) {
	ctx, span := r.tracer.Start(ctx, "borrowed_books.create")
	defer span.End()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return entity.InsertAck{}, err
	}
	return insertAck(res), nil
}

func (r *BorrowedBookMongo) DeleteByID(ctx context.Context, id string) (entity.DeleteAck, error) {
	ctx, span := r.tracer.Start(ctx, "borrowed_books.delete_by_id",
		trace.WithAttributes(attribute.String("borrowed.id", id)),
	)
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.DeleteAck{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return entity.DeleteAck{}, err
	}
	return deleteAck(res), nil
}
