package usecase

import (
	"context"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]entity.Document, error)
	Create(ctx context.Context, doc entity.Document) (entity.InsertAck, error)
}
