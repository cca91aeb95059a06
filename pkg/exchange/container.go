package exchange

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
)

// Container is a thread-safe registry of exchange clients keyed by account
// name. Each client carries its own credentials, so one process can trade
// several accounts side by side.
type Container struct {
	mu       sync.RWMutex
	accounts map[string]Exchange
}

// NewContainer creates and returns a new empty container.
func NewContainer() *Container {
	return &Container{
		accounts: make(map[string]Exchange),
	}
}

// Register adds a client under the given account name.
// It fails if the name is empty or already taken.
func (c *Container) Register(account string, ex Exchange) error {
	if account == "" {
		return errors.New("account name is required")
	}
	if ex == nil {
		return fmt.Errorf("account %q: exchange is nil", account)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.accounts[account]; exists {
		return fmt.Errorf("account %q already registered", account)
	}
	c.accounts[account] = ex
	return nil
}

// Get retrieves the client registered for account.
func (c *Container) Get(account string) (Exchange, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ex, exists := c.accounts[account]
	if !exists {
		return nil, fmt.Errorf("account %q not found", account)
	}
	return ex, nil
}

// Accounts returns the registered account names in sorted order.
func (c *Container) Accounts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.accounts))
	for name := range c.accounts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Unregister removes an account and returns its client, if any.
// The client is not closed.
func (c *Container) Unregister(account string) (Exchange, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ex, exists := c.accounts[account]
	delete(c.accounts, account)
	return ex, exists
}

// Exists checks whether an account is registered.
func (c *Container) Exists(account string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.accounts[account]
	return exists
}

// Close closes every registered client that implements io.Closer and empties
// the container.
func (c *Container) Close() error {
	c.mu.Lock()
	accounts := c.accounts
	c.accounts = make(map[string]Exchange)
	c.mu.Unlock()

	var errs []error
	for name, ex := range accounts {
		if closer, ok := ex.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %q: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
