package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// Connect creates a Redis client and verifies connectivity with a ping,
// retrying with exponential backoff until the client answers or the attempts
// run out.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if err := validateURL(cfg.ConnectionURL); err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(interval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return client, nil
}

// Healthcheck returns a probe function that pings the client.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// validateURL rejects URLs whose scheme go-redis would not handle anyway,
// producing a clearer error than the driver's.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Join(ErrFailedToParseRedisConnString, err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrFailedToParseRedisConnString, u.Scheme)
	}
	return nil
}
