package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/redis"
	"github.com/Darlington6/safeboda/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
	GetError    error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email || u.PhoneNumber == user.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK PASSENGER REPOSITORY
// ──────────────────────────────────────────────

// MockPassengerRepository is a mock implementation of PassengerRepository.
type MockPassengerRepository struct {
	mu         sync.RWMutex
	passengers map[string]*domain.Passenger

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockPassengerRepository creates a new mock passenger repository.
func NewMockPassengerRepository() *MockPassengerRepository {
	return &MockPassengerRepository{
		passengers: make(map[string]*domain.Passenger),
	}
}

// AddPassenger adds a profile to the mock repository.
func (m *MockPassengerRepository) AddPassenger(p *domain.Passenger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[p.UserID] = p
}

// GetPassenger returns a stored profile for test assertions.
func (m *MockPassengerRepository) GetPassenger(userID string) *domain.Passenger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.passengers[userID]
}

// Count returns the number of stored profiles.
func (m *MockPassengerRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.passengers)
}

func (m *MockPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.passengers[p.UserID]; exists {
		return repository.ErrDuplicate
	}
	copy := *p
	m.passengers[p.UserID] = &copy
	return nil
}

func (m *MockPassengerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passengers[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *MockPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.passengers[p.UserID]; !ok {
		return repository.ErrNotFound
	}
	copy := *p
	m.passengers[p.UserID] = &copy
	return nil
}

func (m *MockPassengerRepository) Delete(ctx context.Context, userID string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.passengers[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.passengers, userID)
	return nil
}

func (m *MockPassengerRepository) List(ctx context.Context, filter repository.PassengerFilter) ([]*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Passenger
	for _, p := range m.passengers {
		if filter.PreferredPaymentMethod != nil && p.PreferredPaymentMethod != *filter.PreferredPaymentMethod {
			continue
		}
		if filter.PreferredCarType != nil && p.PreferredCarType != *filter.PreferredCarType {
			continue
		}
		if filter.IsPhoneVerified != nil && p.IsPhoneVerified != *filter.IsPhoneVerified {
			continue
		}
		if filter.IsProfileComplete != nil && p.IsProfileComplete != *filter.IsProfileComplete {
			continue
		}
		copy := *p
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK PASSENGER CACHE
// ──────────────────────────────────────────────

// MockPassengerCache is an in-memory implementation of
// redis.PassengerCacheInterface.
type MockPassengerCache struct {
	mu      sync.RWMutex
	entries map[string]*redis.CachedPassenger

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockPassengerCache creates a new mock passenger cache.
func NewMockPassengerCache() *MockPassengerCache {
	return &MockPassengerCache{
		entries: make(map[string]*redis.CachedPassenger),
	}
}

func (m *MockPassengerCache) GetPassenger(ctx context.Context, userID string) (*redis.CachedPassenger, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	cached, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	copy := *cached
	return &copy, nil
}

func (m *MockPassengerCache) SetPassenger(ctx context.Context, cached *redis.CachedPassenger) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *cached
	m.entries[cached.UserID] = &copy
	return nil
}

func (m *MockPassengerCache) InvalidatePassenger(ctx context.Context, userID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}
