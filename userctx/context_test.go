package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))

	ctx = SetUserID(ctx, "u1")
	assert.Equal(t, "u1", GetUserID(ctx))
}
