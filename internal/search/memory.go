package search

import (
	"context"
	"sync"

	"vglist/backend/internal/models"
)

// MemoryIndex keeps documents in process. Used by tests and local runs
// without search credentials.
type MemoryIndex struct {
	mu   sync.Mutex
	docs map[string]Document
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{docs: make(map[string]Document)}
}

func (m *MemoryIndex) SaveGames(_ context.Context, games []models.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range games {
		d := NewDocument(g)
		m.docs[d.ObjectID] = d
	}
	return nil
}

// Get returns the document stored under objectID.
func (m *MemoryIndex) Get(objectID string) (Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[objectID]
	return d, ok
}

func (m *MemoryIndex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
