package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/signin-with-google/models"
)

func TestSignInController_OnSignInResult(t *testing.T) {
	c := NewSignInController()
	assert.Equal(t, models.DefaultSignInState(), c.State())

	c.OnSignInResult(models.NewSignInSuccess(&models.UserData{ID: "u1"}))
	assert.Equal(t, models.SignInState{Success: true}, c.State())

	c.OnSignInResult(models.NewSignInFailure("invalid token"))
	state := c.State()
	assert.False(t, state.Success)
	assert.Equal(t, "invalid token", models.StringValue(state.Error))

	// A result with neither user nor error leaves no error behind
	c.OnSignInResult(models.SignInResult{})
	assert.Equal(t, models.SignInState{}, c.State())
}

func TestSignInController_ErrorIsCopied(t *testing.T) {
	c := NewSignInController()
	result := models.NewSignInFailure("invalid token")

	c.OnSignInResult(result)
	*result.Error = "mutated"

	assert.Equal(t, "invalid token", models.StringValue(c.State().Error))
}

func TestSignInController_ResetStateIsIdempotent(t *testing.T) {
	c := NewSignInController()
	c.OnSignInResult(models.NewSignInSuccess(&models.UserData{ID: "u1"}))

	c.ResetState()
	assert.Equal(t, models.SignInState{Success: false, Error: nil}, c.State())

	c.ResetState()
	assert.Equal(t, models.SignInState{Success: false, Error: nil}, c.State())
}

func TestSignInController_Observe(t *testing.T) {
	c := NewSignInController()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	states := c.Observe(ctx)
	assert.Equal(t, models.DefaultSignInState(), receive(t, states))

	c.OnSignInResult(models.NewSignInSuccess(&models.UserData{ID: "u1"}))
	assert.True(t, receive(t, states).Success)

	// Unread states are conflated to the latest one
	c.OnSignInResult(models.NewSignInFailure("first"))
	c.OnSignInResult(models.NewSignInFailure("second"))
	assert.Equal(t, "second", models.StringValue(receive(t, states).Error))

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-states:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func receive(t *testing.T, states <-chan models.SignInState) models.SignInState {
	t.Helper()
	select {
	case s := <-states:
		return s
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for state")
		return models.SignInState{}
	}
}
