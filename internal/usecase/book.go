package usecase

import (
	"context"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

// object for filter
type ListParams struct {
	// MinQuantity keeps only books with quantity strictly greater
	// than this value. Nil means no filter.
	MinQuantity *int
}

// Repository interface
// Defines the contract for the books collection.
type BookRepository interface {
	// List books, optionally filtered by available quantity
	List(ctx context.Context, p ListParams) ([]entity.Document, error)
	// List books in one category
	ListByCategory(ctx context.Context, category string) ([]entity.Document, error)
	// Get a book by its name; nil document when absent
	GetByName(ctx context.Context, name string) (entity.Document, error)
	// Get a book by its hex object id; nil document when absent
	GetByID(ctx context.Context, id string) (entity.Document, error)
	// Insert the client document verbatim
	Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error)
	// Merge all fields into the document with this id, inserting a
	// new document when none exists (upsert)
	UpsertByID(ctx context.Context, id string, doc entity.Document) (entity.UpdateAck, error)
	// Merge only the supplied fields into the document with this
	// name; no upsert, zero matches when the name is unknown
	PatchByName(ctx context.Context, name string, doc entity.Document) (entity.UpdateAck, error)
	// Atomically take one copy of the named book. ErrNotFound when
	// no such book exists, ErrNoCopies when quantity is zero.
	TakeCopy(ctx context.Context, name string) error
	// Put one copy of the named book back
	ReturnCopy(ctx context.Context, name string) error
}
