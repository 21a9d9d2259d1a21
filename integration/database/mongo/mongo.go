package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// New creates a MongoDB client and verifies the connection with a ping,
// retrying with exponential backoff to ride out cold starts.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}

	var client *mongo.Client
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		client, err = mongo.Connect(opts)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	return client, nil
}

// NewWithDatabase creates a verified client and returns a handle to the
// named database.
func NewWithDatabase(ctx context.Context, cfg Config, name string) (*mongo.Database, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

// Healthcheck returns a probe function that pings the primary.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
