package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/store"
)

var (
	flagURI  string
	flagDB   string
	flagDrop bool
)

func main() {
	_ = godotenv.Load(".env.local")

	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed the quickReadsDB categories and a starter catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	root.Flags().StringVar(&flagURI, "uri", envOr("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection string")
	root.Flags().StringVar(&flagDB, "db", envOr("MONGO_DB", "quickReadsDB"), "database name")
	root.Flags().BoolVar(&flagDrop, "drop", false, "drop the categories and books collections first")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := store.Connect(connectCtx, flagURI)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(flagDB)
	if flagDrop {
		for _, name := range []string{store.CollCategories, store.CollBooks} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				return fmt.Errorf("drop %s: %w", name, err)
			}
		}
	}

	if err := seedCategories(ctx, db.Collection(store.CollCategories)); err != nil {
		return err
	}
	return seedBooks(ctx, db.Collection(store.CollBooks))
}

func seedCategories(ctx context.Context, coll *mongo.Collection) error {
	categories := []entity.Category{
		{Category: "Novel"},
		{Category: "Thriller"},
		{Category: "History"},
		{Category: "Drama"},
		{Category: "Sci-Fi"},
		{Category: "Biography"},
	}

	inserted := 0
	for _, c := range categories {
		count, err := coll.CountDocuments(ctx, bson.M{"category": c.Category})
		if err != nil {
			return fmt.Errorf("count category %q: %w", c.Category, err)
		}
		if count > 0 {
			continue
		}
		if _, err := coll.InsertOne(ctx, c); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Category, err)
		}
		inserted++
	}
	fmt.Printf("Seeded %d categories (%d already present)\n", inserted, len(categories)-inserted)
	return nil
}

func seedBooks(ctx context.Context, coll *mongo.Collection) error {
	books := []entity.Book{
		{Name: "The Catcher in the Rye", AuthorName: "J.D. Salinger", BookCategory: "Novel", Quantity: 5, Rating: 4.5},
		{Name: "The Da Vinci Code", AuthorName: "Dan Brown", BookCategory: "Thriller", Quantity: 3, Rating: 4.1},
		{Name: "Sapiens", AuthorName: "Yuval Noah Harari", BookCategory: "History", Quantity: 4, Rating: 4.7},
		{Name: "Hamlet", AuthorName: "William Shakespeare", BookCategory: "Drama", Quantity: 2, Rating: 4.8},
		{Name: "Dune", AuthorName: "Frank Herbert", BookCategory: "Sci-Fi", Quantity: 6, Rating: 4.6},
		{Name: "The Diary of a Young Girl", AuthorName: "Anne Frank", BookCategory: "Biography", Quantity: 1, Rating: 4.9},
	}

	inserted := 0
	for _, b := range books {
		count, err := coll.CountDocuments(ctx, bson.M{"name": b.Name})
		if err != nil {
			return fmt.Errorf("count book %q: %w", b.Name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := coll.InsertOne(ctx, b); err != nil {
			return fmt.Errorf("insert book %q: %w", b.Name, err)
		}
		inserted++
	}
	fmt.Printf("Seeded %d books (%d already present)\n", inserted, len(books)-inserted)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
