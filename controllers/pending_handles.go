package controllers

import (
	"sync"
	"time"

	"github.com/blogem/signin-with-google/authenticator"
)

// pendingHandleTTL bounds how long a user may take on the provider's page
const pendingHandleTTL = 10 * time.Minute

type pendingHandle struct {
	handle  *authenticator.ProviderHandle
	expires time.Time
}

// pendingHandles parks sign-in handles between the login redirect and the
// provider callback
type pendingHandles struct {
	mu      sync.Mutex
	handles map[string]pendingHandle
	now     func() time.Time
}

func newPendingHandles() *pendingHandles {
	return &pendingHandles{
		handles: make(map[string]pendingHandle),
		now:     time.Now,
	}
}

// Put stores handle and drops expired entries
func (p *pendingHandles) Put(handle *authenticator.ProviderHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for id, pending := range p.handles {
		if now.After(pending.expires) {
			delete(p.handles, id)
		}
	}
	p.handles[handle.ID()] = pendingHandle{handle: handle, expires: now.Add(pendingHandleTTL)}
}

// Take removes and returns the handle, or nil when unknown or expired
func (p *pendingHandles) Take(id string) *authenticator.ProviderHandle {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending, ok := p.handles[id]
	if !ok {
		return nil
	}
	delete(p.handles, id)
	if p.now().After(pending.expires) {
		return nil
	}
	return pending.handle
}
