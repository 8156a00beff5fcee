package controllers

import (
	"context"
	"sync"

	"github.com/blogem/signin-with-google/models"
)

// SignInController holds the observable sign-in state and turns sign-in
// results into state transitions: idle -> success | error -> idle.
type SignInController struct {
	mu          sync.Mutex
	state       models.SignInState
	subscribers map[chan models.SignInState]struct{}
}

// NewSignInController creates a controller in the idle state
func NewSignInController() *SignInController {
	return &SignInController{
		state:       models.DefaultSignInState(),
		subscribers: make(map[chan models.SignInState]struct{}),
	}
}

// State returns the current state
func (c *SignInController) State() models.SignInState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnSignInResult records the outcome of a sign-in attempt
func (c *SignInController) OnSignInResult(result models.SignInResult) {
	next := models.SignInState{Success: result.User != nil}
	if result.User == nil && result.Error != nil {
		msg := *result.Error
		next.Error = &msg
	}
	c.set(next)
}

// ResetState returns to idle once the shell has acted on a success
func (c *SignInController) ResetState() {
	c.set(models.DefaultSignInState())
}

// Observe streams the current state followed by every change until ctx is
// done. Slow readers only see the latest state.
func (c *SignInController) Observe(ctx context.Context) <-chan models.SignInState {
	ch := make(chan models.SignInState, 1)

	c.mu.Lock()
	ch <- c.state
	c.subscribers[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subscribers, ch)
		close(ch)
		c.mu.Unlock()
	}()

	return ch
}

func (c *SignInController) set(state models.SignInState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = state
	for ch := range c.subscribers {
		// Conflate: drop an unread value so the newest state wins
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
