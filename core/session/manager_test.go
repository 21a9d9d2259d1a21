package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lockit/core/session"
)

func newTestManager(t *testing.T, opts ...session.Option) *session.Manager[testData] {
	t.Helper()
	return session.NewManager(session.NewMemoryStore[testData](), opts...)
}

func TestManager_NewAndGetByToken(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	loaded, err := mgr.GetByToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
}

func TestManager_GetByToken_NotFound(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.GetByToken(context.Background(), "unknown-token")

	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager_GetByToken_Expired(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t, session.WithTTL(-time.Minute))

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	_, err = mgr.GetByToken(ctx, sess.Token)

	assert.ErrorIs(t, err, session.ErrExpired)
}

func TestManager_TwoFactorFlow(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	userID := uuid.New()

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	sess, err = mgr.Authenticate(ctx, sess, userID)
	require.NoError(t, err)
	assert.True(t, sess.IsTwoFactorPending())

	sess, err = mgr.ConfirmTwoFactor(ctx, sess)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())

	// The persisted state must match.
	loaded, err := mgr.GetByToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, loaded.IsAuthenticated())
	assert.Equal(t, userID, loaded.UserID)
}

func TestManager_AuthenticateRotatesStoredToken(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)
	anonToken := sess.Token

	_, err = mgr.Authenticate(ctx, sess, uuid.New())
	require.NoError(t, err)

	_, err = mgr.GetByToken(ctx, anonToken)
	assert.ErrorIs(t, err, session.ErrNotFound, "pre-auth token must stop working")
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1", UserAgent: "cli"})
	require.NoError(t, err)
	sess, err = mgr.Authenticate(ctx, sess, uuid.New())
	require.NoError(t, err)

	anon, err := mgr.Logout(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, anon.UserID)
	assert.NotEqual(t, sess.ID, anon.ID)
	assert.Equal(t, sess.IP, anon.IP)

	_, err = mgr.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager_StoreDeletedSession(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	sess, err := mgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	sess.Logout()

	err = mgr.Store(ctx, sess)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	_, err = mgr.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager_DeleteMissingSessionIsNoError(t *testing.T) {
	mgr := newTestManager(t)

	assert.NoError(t, mgr.Delete(context.Background(), uuid.New()))
}

func TestManager_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore[testData]()

	expiredMgr := session.NewManager(store, session.WithTTL(-time.Minute))
	_, err := expiredMgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	liveMgr := session.NewManager(store)
	live, err := liveMgr.New(ctx, session.NewSessionParams{IP: "127.0.0.1"})
	require.NoError(t, err)

	deleted, err := liveMgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = liveMgr.GetByID(ctx, live.ID)
	assert.NoError(t, err)
}
