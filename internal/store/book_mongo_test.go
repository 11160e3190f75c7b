package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

func seedBook(t *testing.T, repo *BookMongo, doc entity.Document) string {
	t.Helper()
	ack, err := repo.Create(context.Background(), doc)
	require.NoError(t, err)
	require.True(t, ack.Acknowledged)
	oid, ok := ack.InsertedID.(primitive.ObjectID)
	require.True(t, ok)
	return oid.Hex()
}

func TestBookMongo_ListFiltersOnQuantity(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	seedBook(t, repo, entity.Document{"name": "In Stock", "quantity": 3})
	seedBook(t, repo, entity.Document{"name": "Out of Stock", "quantity": 0})

	all, err := repo.List(ctx, usecase.ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	min := 0
	available, err := repo.List(ctx, usecase.ListParams{MinQuantity: &min})
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, "In Stock", available[0]["name"])
}

func TestBookMongo_ListByCategory(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	seedBook(t, repo, entity.Document{"name": "Dune", "bookCategory": "Sci-Fi"})
	seedBook(t, repo, entity.Document{"name": "Gone Girl", "bookCategory": "Thriller"})

	docs, err := repo.ListByCategory(ctx, "Sci-Fi")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Dune", docs[0]["name"])

	none, err := repo.ListByCategory(ctx, "Poetry")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestBookMongo_GetByName(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	seedBook(t, repo, entity.Document{"name": "Dune", "authorName": "Frank Herbert"})

	doc, err := repo.GetByName(ctx, "Dune")
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, "Frank Herbert", doc["authorName"])

	missing, err := repo.GetByName(ctx, "No Such Book")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestBookMongo_UpsertByID(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	id := seedBook(t, repo, entity.Document{"name": "Dune", "rating": 4})

	ack, err := repo.UpsertByID(ctx, id, entity.Document{"name": "Dune", "rating": 5})
	require.NoError(t, err)
	require.True(t, ack.Acknowledged)
	require.EqualValues(t, 1, ack.MatchedCount)
	require.EqualValues(t, 1, ack.ModifiedCount)
	require.EqualValues(t, 0, ack.UpsertedCount)

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 5, doc["rating"])

	// an unknown id inserts a new document
	newID := primitive.NewObjectID().Hex()
	ack, err = repo.UpsertByID(ctx, newID, entity.Document{"name": "Hyperion"})
	require.NoError(t, err)
	require.EqualValues(t, 0, ack.MatchedCount)
	require.EqualValues(t, 1, ack.UpsertedCount)
}

func TestBookMongo_PatchByName_NoMatch(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)

	ack, err := repo.PatchByName(context.Background(), "Unknown Book", entity.Document{"rating": 1})
	require.NoError(t, err)
	require.True(t, ack.Acknowledged)
	require.EqualValues(t, 0, ack.MatchedCount)
	require.EqualValues(t, 0, ack.ModifiedCount)
}

func TestBookMongo_TakeCopy(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	id := seedBook(t, repo, entity.Document{"name": "Dune", "quantity": 1})

	require.NoError(t, repo.TakeCopy(ctx, "Dune"))

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 0, doc["quantity"])

	// every copy is out
	err = repo.TakeCopy(ctx, "Dune")
	require.ErrorIs(t, err, usecase.ErrNoCopies)

	// the book does not exist at all
	err = repo.TakeCopy(ctx, "No Such Book")
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestBookMongo_ReturnCopy(t *testing.T) {
	db := setupTestDB(t)
	freshCollection(t, db, CollBooks)
	repo := NewBookMongo(db)
	ctx := context.Background()

	id := seedBook(t, repo, entity.Document{"name": "Dune", "quantity": 0})

	require.NoError(t, repo.ReturnCopy(ctx, "Dune"))

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, doc["quantity"])

	// returning against a vanished catalog entry is a no-op
	require.NoError(t, repo.ReturnCopy(ctx, "No Such Book"))
}
