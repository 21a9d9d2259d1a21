// Package redis creates verified go-redis clients with URL validation and
// retrying connection establishment, plus a health probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// The session Redis store (core/session.NewRedisStore) takes the returned
// client directly.
package redis
