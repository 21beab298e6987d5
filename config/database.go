package config

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildMongoURI returns MONGODB_URI when set, otherwise the Atlas SRV URI built
// from the credential variables.
func (c *Config) BuildMongoURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPass),
		c.DBCluster,
	)
}

func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.BuildMongoURI()).
		SetServerAPIOptions(serverAPI).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

func CloseDB(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Database disconnect failed: %v", err)
		return
	}
	log.Println("Database connection closed")
}
