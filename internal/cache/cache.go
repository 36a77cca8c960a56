// Package cache holds the process-wide in-memory mirror of todo items,
// keyed by owning user so concurrent sessions never clobber each other.
// Every mutation here is ordered after the corresponding database write.
package cache

import (
	"sync"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
)

// TodoCache is safe for any number of concurrent readers or one writer.
// Read and write locks are never held at the same time by one caller.
type TodoCache struct {
	mu     sync.RWMutex
	byUser map[string][]models.Todo
}

// New creates an empty TodoCache.
func New() *TodoCache {
	return &TodoCache{
		byUser: make(map[string][]models.Todo),
	}
}

// ReplaceAll swaps the user's cached todos wholesale. Used at login
// with the newest-first list fetched from the database.
func (c *TodoCache) ReplaceAll(userID string, todos []models.Todo) {
	items := make([]models.Todo, len(todos))
	copy(items, todos)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byUser[userID] = items
}

// InsertFront prepends a freshly created todo, keeping newest-first
// order without re-querying the database.
func (c *TodoCache) InsertFront(userID string, todo models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byUser[userID] = append([]models.Todo{todo}, c.byUser[userID]...)
}

// UpdateInPlace mutates the matching entry's title, description and
// status. A missing id is a no-op; the database row is the source of
// truth and has already been handled.
func (c *TodoCache) UpdateInPlace(userID string, id uint64, title, description string, status bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	todos := c.byUser[userID]
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Title = title
			todos[i].Description = description
			todos[i].Status = status
			return
		}
	}
}

// Remove filters out the entry with the given id. Removing an absent
// id is a no-op, which also makes Remove usable to prune entries whose
// backing row may no longer exist.
func (c *TodoCache) Remove(userID string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	todos := c.byUser[userID]
	for i := range todos {
		if todos[i].ID == id {
			c.byUser[userID] = append(todos[:i], todos[i+1:]...)
			return
		}
	}
}

// ReadAll returns a snapshot copy of the user's todos, safe to use
// after the lock is released.
func (c *TodoCache) ReadAll(userID string) []models.Todo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	todos := c.byUser[userID]
	snapshot := make([]models.Todo, len(todos))
	copy(snapshot, todos)
	return snapshot
}
