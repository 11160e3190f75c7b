package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

type BookMongo struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewBookMongo(db *mongo.Database) *BookMongo {
	return &BookMongo{
		coll:   db.Collection(CollBooks),
		tracer: otel.Tracer("quickreads/store"),
	}
}

func (r *BookMongo) List(ctx context.Context, p usecase.ListParams) ([]entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "books.list")
	defer span.End()

	filter := bson.M{}
	if p.MinQuantity != nil {
		filter["quantity"] = bson.M{"$gt": *p.MinQuantity}
		span.SetAttributes(attribute.Int("filter.min_quantity", *p.MinQuantity))
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

func (r *BookMongo) ListByCategory(ctx context.Context, category string) ([]entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "books.list_by_category",
		trace.WithAttributes(attribute.String("book.category", category)),
	)
	defer span.End()

	cursor, err := r.coll.Find(ctx, bson.M{"bookCategory": category})
	if err != nil {
		return nil, err
	}
	var docs []entity.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *BookMongo) GetByName(ctx context.Context, name string) (entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "books.get_by_name",
		trace.WithAttributes(attribute.String("book.name", name)),
	)
	defer span.End()

	var doc entity.Document
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *BookMongo) GetByID(ctx context.Context, id string) (entity.Document, error) {
	ctx, span := r.tracer.Start(ctx, "books.get_by_id",
		trace.WithAttributes(attribute.String("book.id", id)),
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

func (r *BookMongo) Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error) {
	ctx, span := r.tracer.Start(ctx, "books.create")
	defer span.End()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return entity.InsertAck{}, err
	}
	return insertAck(res), nil
}

func (r *BookMongo) UpsertByID(ctx context.Context, id string, doc entity.Document) (entity.UpdateAck, error) {
	ctx, span := r.tracer.Start(ctx, "books.upsert_by_id",
		trace.WithAttributes(attribute.String("book.id", id)),
	)
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.UpdateAck{}, err
	}
	// _id is immutable; a client echoing the id back must not end up
	// inside the $set document.
	delete(doc, "_id")

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return entity.UpdateAck{}, err
	}
	return updateAck(res), nil
}

func (r *BookMongo) PatchByName(ctx context.Context, name string, doc entity.Document) (entity.UpdateAck, error) {
	ctx, span := r.tracer.Start(ctx, "books.patch_by_name",
		trace.WithAttributes(attribute.String("book.name", name)),
	)
	defer span.End()

	delete(doc, "_id")

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$set": doc},
	)
	if err != nil {
		return entity.UpdateAck{}, err
	}
	return updateAck(res), nil
}

// TakeCopy decrements the named book's quantity, but only while at
// least one copy remains. The guard and decrement are one conditional
// update, so concurrent borrows serialize at the store.
func (r *BookMongo) TakeCopy(ctx context.Context, name string) error {
	ctx, span := r.tracer.Start(ctx, "books.take_copy",
		trace.WithAttributes(attribute.String("book.name", name)),
	)
	defer span.End()

	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name, "quantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"quantity": -1}},
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		count, countErr := r.coll.CountDocuments(ctx, bson.M{"name": name})
		if countErr != nil {
			return countErr
		}
		if count == 0 {
			return usecase.ErrNotFound
		}
		return usecase.ErrNoCopies
	}
	return err
}

// ReturnCopy puts one copy back. A missing book is not an error: the
// catalog entry may have been replaced since the borrow.
func (r *BookMongo) ReturnCopy(ctx context.Context, name string) error {
	ctx, span := r.tracer.Start(ctx, "books.return_copy",
		trace.WithAttributes(attribute.String("book.name", name)),
	)
	defer span.End()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{"quantity": 1}},
	)
	return err
}
