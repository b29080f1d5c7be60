package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/events"
)

// ============================================
// MOCKS de los repositorios para los tests
// ============================================

type mockUserRepository struct {
	users map[uint]*domain.User
	err   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) add(user *domain.User) *domain.User {
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = user
	return user
}

func (m *mockUserRepository) GetAll(_ context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	users := []domain.User{}
	for i := uint(1); i <= uint(len(m.users)); i++ {
		users = append(users, *m.users[i])
	}
	return users, nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// mockCatalog sirve como repositorio de personajes o de planetas
type mockCatalog[T any] struct {
	rows map[uint]*T
	err  error
}

func newMockCatalog[T any]() *mockCatalog[T] {
	return &mockCatalog[T]{rows: make(map[uint]*T)}
}

func (m *mockCatalog[T]) GetAll(_ context.Context) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	rows := []T{}
	for i := uint(1); i <= uint(len(m.rows)); i++ {
		rows = append(rows, *m.rows[i])
	}
	return rows, nil
}

func (m *mockCatalog[T]) GetByID(_ context.Context, id uint) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[id], nil
}

type mockFavoriteRepository struct {
	favorites []*domain.Favorite
	// gone simula filas borradas entre GetByUser y GetByID
	gone  map[uint]bool
	calls int
}

func (m *mockFavoriteRepository) GetByID(_ context.Context, id uint) (*domain.Favorite, error) {
	m.calls++
	if m.gone[id] {
		return nil, nil
	}
	for _, f := range m.favorites {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (m *mockFavoriteRepository) GetByUser(_ context.Context, userID uint) ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	for _, f := range m.favorites {
		if f.UserID == userID {
			favorites = append(favorites, *f)
		}
	}
	return favorites, nil
}

func (m *mockFavoriteRepository) FindByUserAndTarget(_ context.Context, userID uint, kind domain.TargetKind, targetID uint) (*domain.Favorite, error) {
	for _, f := range m.favorites {
		if f.UserID == userID && f.Targets(kind, targetID) {
			return f, nil
		}
	}
	return nil, nil
}

// mockStore simula el auto-increment y guarda favoritos en el mockFavoriteRepository
type mockStore struct {
	favorites *mockFavoriteRepository
	saved     []interface{}
	deleted   []interface{}
	err       error
	nextID    uint
}

func (m *mockStore) Save(_ context.Context, entity interface{}) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	switch e := entity.(type) {
	case *domain.User:
		e.ID = m.nextID
	case *domain.Character:
		e.ID = m.nextID
	case *domain.Planet:
		e.ID = m.nextID
	case *domain.Favorite:
		e.ID = m.nextID
		if m.favorites != nil {
			m.favorites.favorites = append(m.favorites.favorites, e)
		}
	}
	m.saved = append(m.saved, entity)
	return nil
}

func (m *mockStore) Delete(_ context.Context, entity interface{}) error {
	if m.err != nil {
		return m.err
	}
	if f, ok := entity.(*domain.Favorite); ok && m.favorites != nil {
		kept := m.favorites.favorites[:0]
		for _, existing := range m.favorites.favorites {
			if existing.ID != f.ID {
				kept = append(kept, existing)
			}
		}
		m.favorites.favorites = kept
	}
	m.deleted = append(m.deleted, entity)
	return nil
}

// mockCache guarda el JSON como el caché real
type mockCache struct {
	data map[string][]byte
	hits int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(key string, dest interface{}) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	m.hits++
	return json.Unmarshal(raw, dest) == nil
}

func (m *mockCache) Set(key string, value interface{}) {
	raw, _ := json.Marshal(value)
	m.data[key] = raw
}

func (m *mockCache) Close() {}

type recordingPublisher struct {
	messages []events.Message
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, msg events.Message) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var errConnectionLost = errors.New("connection lost")

func strPtr(s string) *string { return &s }
