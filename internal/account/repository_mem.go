package account

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memRepo struct {
	mu    sync.Mutex
	byKey map[string]*User // lowercased username -> user
	byID  map[string]string
}

func NewMemoryRepo() Repo {
	return &memRepo{
		byKey: make(map[string]*User),
		byID:  make(map[string]string),
	}
}

func (m *memRepo) Create(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(u.Username)
	if _, ok := m.byKey[key]; ok {
		return ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	cp := *u
	m.byKey[key] = &cp
	m.byID[u.ID] = key
	return nil
}

func (m *memRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byKey[strings.ToLower(username)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	delete(m.byKey, key)
	return nil
}
