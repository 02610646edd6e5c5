package dates

import (
	"context"
	"errors"
	"sync"
)

// DefaultClient is the process-wide client slot. Get returns the registered
// client, building and keeping one with the factory when the slot is empty.
// Set and Clear are last-writer-wins.
type DefaultClient struct {
	mu      sync.Mutex
	client  Client
	factory ClientFactory
}

// NewDefaultClient creates an empty slot backed by factory.
func NewDefaultClient(factory ClientFactory) *DefaultClient {
	return &DefaultClient{factory: factory}
}

// Get returns the registered client or constructs one.
// A failed construction leaves the slot empty so the next call retries it.
func (d *DefaultClient) Get(ctx context.Context) (Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		return d.client, nil
	}
	if d.factory == nil {
		return nil, &ConfigurationError{Reason: "no default client registered", Err: errors.New("client factory is nil")}
	}

	c, err := d.factory(ctx)
	if err != nil {
		return nil, err
	}
	d.client = c
	return c, nil
}

// Set registers c. A nil c clears the slot.
func (d *DefaultClient) Set(c Client) {
	d.mu.Lock()
	d.client = c
	d.mu.Unlock()
}

// Clear forgets the registered client; tests call it during teardown.
func (d *DefaultClient) Clear() {
	d.Set(nil)
}

// Resolve returns explicit when non-nil, otherwise the default client.
func (d *DefaultClient) Resolve(ctx context.Context, explicit Client) (Client, error) {
	if explicit != nil {
		return explicit, nil
	}
	return d.Get(ctx)
}
