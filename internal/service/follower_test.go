package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/testhelpers"
)

func TestFollowAndDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFollowerService(db)
	ctx := context.Background()

	follower := createUser(t, db, "follower")
	followed := createUser(t, db, "followed")

	edge, err := svc.Follow(ctx, follower.ID, followed.ID)
	require.NoError(t, err)
	assert.Equal(t, "followed", edge.Followed.Username)
	assert.Equal(t, "follower", edge.Owner.Username)

	// The unique index rejects the second edge; no pre-check is involved.
	_, err = svc.Follow(ctx, follower.ID, followed.ID)
	assert.ErrorIs(t, err, service.ErrDuplicateFollow)

	// The reverse direction is a distinct edge.
	_, err = svc.Follow(ctx, followed.ID, follower.ID)
	assert.NoError(t, err)
}

func TestFollowSelf(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFollowerService(db)

	user := createUser(t, db, "loner")

	_, err := svc.Follow(context.Background(), user.ID, user.ID)
	assert.ErrorIs(t, err, service.ErrSelfFollow)
}

func TestFollowUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFollowerService(db)

	user := createUser(t, db, "follower")

	_, err := svc.Follow(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFollowerService(db)
	ctx := context.Background()

	follower := createUser(t, db, "follower")
	followed := createUser(t, db, "followed")
	stranger := createUser(t, db, "stranger")

	edge, err := svc.Follow(ctx, follower.ID, followed.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Unfollow(ctx, stranger.ID, edge.ID), service.ErrForbidden)
	require.NoError(t, svc.Unfollow(ctx, follower.ID, edge.ID))
	assert.ErrorIs(t, svc.Unfollow(ctx, follower.ID, edge.ID), service.ErrNotFound)

	// The edge is hard deleted, so following again works.
	_, err = svc.Follow(ctx, follower.ID, followed.ID)
	assert.NoError(t, err)
}
