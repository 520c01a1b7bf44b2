package identity

import (
	"context"
	"strings"
	"sync"
)

// MemoryDirectory is an in-process Directory used for local development and
// tests.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryDirectory(users ...User) *MemoryDirectory {
	d := &MemoryDirectory{users: make(map[string]User, len(users))}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

var _ Directory = (*MemoryDirectory)(nil)

// Add registers or replaces a user.
func (d *MemoryDirectory) Add(u User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
}

func (d *MemoryDirectory) UserByUsername(_ context.Context, username string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.Username != nil && *u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (d *MemoryDirectory) UsersByIDs(_ context.Context, ids []string) ([]User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	users := []User{}
	for _, id := range ids {
		if u, ok := d.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (d *MemoryDirectory) SearchUsers(_ context.Context, query string) ([]User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	q := strings.ToLower(query)
	users := []User{}
	for _, u := range d.users {
		if u.Username != nil && strings.Contains(strings.ToLower(*u.Username), q) {
			users = append(users, u)
		}
		if len(users) == maxSearchResults {
			break
		}
	}
	return users, nil
}
