package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftnet/backend/internal/service"
)

func TestMemorySessionStore(t *testing.T) {
	store := service.NewMemorySessionStore()
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, store.Save(ctx, "session-1", userID, time.Hour))
	require.NoError(t, store.Save(ctx, "session-2", userID, time.Hour))
	require.NoError(t, store.Save(ctx, "session-3", uuid.New(), time.Hour))

	live, err := store.Valid(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, live)

	live, err = store.Valid(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, live)

	require.NoError(t, store.Revoke(ctx, "session-1"))
	live, _ = store.Valid(ctx, "session-1")
	assert.False(t, live)
	live, _ = store.Valid(ctx, "session-2")
	assert.True(t, live)

	// RevokeAll removes the user's sessions and nobody else's.
	require.NoError(t, store.RevokeAll(ctx, userID))
	live, _ = store.Valid(ctx, "session-2")
	assert.False(t, live)
	live, _ = store.Valid(ctx, "session-3")
	assert.True(t, live)
}
