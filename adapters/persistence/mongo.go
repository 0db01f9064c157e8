package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laybeentan/portfolio-api/internal/config"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

func NewMongoDatabase(cfg config.Config, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("do not create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect MongoDB successfully.")
	return client, client.Database(cfg.Mongo.Database), nil
}
