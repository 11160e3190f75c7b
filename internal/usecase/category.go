package usecase

import (
	"context"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

// Repository interface
// Defines the contract for the categories collection.
type CategoryRepository interface {
	// List all categories
	List(ctx context.Context) ([]entity.Document, error)
	// Get a category by its name; nil document when absent
	GetByName(ctx context.Context, name string) (entity.Document, error)
	// Insert the client document verbatim
	Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error)
}
