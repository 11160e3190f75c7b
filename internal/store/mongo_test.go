package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// setupTestDB connects to a local MongoDB and hands back a scratch
// database. Tests are skipped when no server is reachable.
func setupTestDB(t *testing.T) *mongo.Database {
	ctx := context.Background()
	client, err := Connect(ctx, "mongodb://localhost:27017")
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client.Database("quickreads_test")
}

// freshCollection drops the named collection so each test starts from
// a known state.
func freshCollection(t *testing.T, db *mongo.Database, name string) {
	if err := db.Collection(name).Drop(context.Background()); err != nil {
		t.Fatalf("dropping collection %s: %v", name, err)
	}
}
