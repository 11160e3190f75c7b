package store

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
)

func insertAck(res *mongo.InsertOneResult) entity.InsertAck {
	return entity.InsertAck{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}
}

func updateAck(res *mongo.UpdateResult) entity.UpdateAck {
	ack := entity.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		ack.UpsertedCount = 1
		ack.UpsertedID = res.UpsertedID
	}
	return ack
}

func deleteAck(res *mongo.DeleteResult) entity.DeleteAck {
	return entity.DeleteAck{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
