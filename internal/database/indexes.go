package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	receiptIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "receipt", Value: 1}},
		Options: options.Index().
			SetName("receipt_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"receipt": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureOrderIndexes: creating createdAt_index index")
	if _, err := indexes.CreateOne(ctx, createdAtIndex); err != nil {
		log.Println("EnsureOrderIndexes: createdAt index error:", err)
		return err
	}

	log.Println("EnsureOrderIndexes: creating receipt_unique index")
	if _, err := indexes.CreateOne(ctx, receiptIndex); err != nil {
		log.Println("EnsureOrderIndexes: receipt index error:", err)
		return err
	}
	return nil
}
