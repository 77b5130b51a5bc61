package models

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/connectedautocare/quoteapi/internal/pkg/auth"
	"github.com/connectedautocare/quoteapi/internal/pkg/env"
)

// Store errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserStore keeps users in memory for the process lifetime. There is no
// persistence layer; accounts are seeded at startup and registration adds
// to the map. Reads vastly outnumber writes, hence the RWMutex.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by lower-case email
}

var (
	store     *UserStore
	storeOnce sync.Once
)

// GetUserStore returns the process-wide store, seeding default accounts on
// first use.
func GetUserStore() *UserStore {
	storeOnce.Do(func() {
		store = &UserStore{users: make(map[string]*User)}
		store.seedDefaults()
	})
	return store
}

// seedDefaults creates the three stock accounts (admin, wholesale reseller,
// demo customer). Passwords come from env with dev-only fallbacks.
func (s *UserStore) seedDefaults() {
	seeds := []struct {
		email   string
		role    string
		pwKey   string
		pwDef   string
		company string
	}{
		{"admin@quoteapi.local", auth.RoleAdmin, "ADMIN_PASSWORD", "Admin123!", ""},
		{"reseller@quoteapi.local", auth.RoleWholesaleReseller, "RESELLER_PASSWORD", "Reseller123!", "Demo Wholesale LLC"},
		{"customer@quoteapi.local", auth.RoleCustomer, "CUSTOMER_PASSWORD", "Customer123!", ""},
	}

	for _, seed := range seeds {
		user, err := CreateUser(seed.email, env.GetEnv(seed.pwKey, seed.pwDef), seed.role)
		if err != nil {
			log.Printf("user store: failed to seed %s: %v", seed.email, err)
			continue
		}
		user.CompanyName = seed.company
		s.users[strings.ToLower(seed.email)] = user
	}
}

// GetByEmail looks a user up by email, case-insensitive.
func (s *UserStore) GetByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByID looks a user up by ID.
func (s *UserStore) GetByID(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Add inserts a new user, rejecting duplicate emails.
func (s *UserStore) Add(user *User) error {
	key := strings.ToLower(strings.TrimSpace(user.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrEmailTaken
	}
	s.users[key] = user
	return nil
}

// RecordLogin stamps the user's last login time.
func (s *UserStore) RecordLogin(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	user.LastLoginAt = &now
}
