package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lockit/integration/database/mongo"
)

func TestNew_EmptyURL(t *testing.T) {
	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestNew_MalformedURL(t *testing.T) {
	_, err := mongo.New(context.Background(), mongo.Config{
		ConnectionURL: "not-a-mongodb-url",
		RetryAttempts: 0,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
