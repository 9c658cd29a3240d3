package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("record not found")

var (
	// MongoClient is the global MongoDB client instance.
	MongoClient *mongo.Client
	// MongoDB is the application database on MongoClient.
	MongoDB *mongo.Database
)

// InitDB initializes the MongoDB connection.
func InitDB(uri, dbName string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	MongoDB = client.Database(dbName)
	logger.Info("Connected to MongoDB", zap.String("database", dbName))
	return nil
}

// Disconnect closes the global client, if any.
func Disconnect(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}

// NewContext creates a context with the given timeout.
func NewContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
