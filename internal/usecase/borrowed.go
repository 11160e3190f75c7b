package usecase

import (
	"context"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

type BorrowedBookRepository interface {
	// List borrowed books, filtered to one borrower when email is
	// non-empty
	List(ctx context.Context, email string) ([]entity.Document, error)
	// Get a borrowed-book record by its hex object id; nil when absent
	GetByID(ctx context.Context, id string) (entity.Document, error)
	// Insert the client document verbatim
	Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error)
	// Delete by hex object id; deletedCount 0 when absent
	DeleteByID(ctx context.Context, id string) (entity.DeleteAck, error)
}
