package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateAssignsID(t *testing.T) {
	user := &User{}
	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)

	post := &Post{}
	require.NoError(t, post.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	id := uuid.New()
	user := &User{ID: id}
	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, id, user.ID)
}
