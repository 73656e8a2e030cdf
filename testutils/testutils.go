package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"inotebook/config"
	"inotebook/logger"
	"inotebook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupTestDB connects to the MongoDB at TEST_MONGO_URI and returns a fresh
// database that is dropped on cleanup. The test is skipped when the
// variable is not set.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := utils.NewMongoClient(ctx, config.DatabaseConfig{
		URI:             uri,
		MaxPoolSize:     10,
		MinPoolSize:     1,
		MaxConnIdleTime: time.Minute,
		RetryWrites:     true,
		ConnectRetries:  1,
	}, logger.Discard())
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database("inotebook_test_" + uuid.NewString()[:8])

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.Drop(ctx); err != nil {
			t.Logf("Warning: Failed to drop test database %s: %v", db.Name(), err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: Failed to disconnect: %v", err)
		}
	})

	return db
}
