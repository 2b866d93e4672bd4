package router_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"contacts/internal/database"
)

// memoryStore keeps users and contacts in maps for end to end tests.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[string]database.User
	contacts map[int64]database.Contact
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]database.User),
		contacts: make(map[int64]database.Contact),
	}
}

func (s *memoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memoryStore) SaveUser(_ context.Context, email, passwordHash string) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return database.User{}, database.ErrUserExists
	}

	user := database.User{
		ID:           s.id(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         database.RoleUser,
		CreatedAt:    time.Now(),
	}
	s.users[email] = user

	return user, nil
}

func (s *memoryStore) UserByEmail(_ context.Context, email string) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return database.User{}, database.ErrUserNotFound
	}

	return user, nil
}

func (s *memoryStore) updateUser(email string, fn func(*database.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return database.ErrUserNotFound
	}

	fn(&user)
	s.users[email] = user

	return nil
}

func (s *memoryStore) VerifyUser(_ context.Context, email string) error {
	return s.updateUser(email, func(u *database.User) { u.IsVerified = true })
}

func (s *memoryStore) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return s.updateUser(email, func(u *database.User) { u.PasswordHash = passwordHash })
}

func (s *memoryStore) UpdateAvatar(_ context.Context, email, avatarURL string) error {
	return s.updateUser(email, func(u *database.User) { u.Avatar = avatarURL })
}

func (s *memoryStore) duplicate(c database.Contact) bool {
	for _, other := range s.contacts {
		if other.OwnerID == c.OwnerID && other.ID != c.ID && other.Email == c.Email {
			return true
		}
	}

	return false
}

func (s *memoryStore) SaveContact(_ context.Context, c database.Contact) (database.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicate(c) {
		return database.Contact{}, database.ErrContactExists
	}

	c.ID = s.id()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.contacts[c.ID] = c

	return c, nil
}

func (s *memoryStore) Contact(_ context.Context, ownerID, id int64) (database.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return database.Contact{}, database.ErrContactNotFound
	}

	return c, nil
}

func (s *memoryStore) owned(ownerID int64) []database.Contact {
	out := make([]database.Contact, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.contacts[id]; ok && c.OwnerID == ownerID {
			out = append(out, c)
		}
	}

	return out
}

func (s *memoryStore) Contacts(_ context.Context, ownerID int64, filter database.ContactFilter) ([]database.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)

	out := make([]database.Contact, 0)
	for _, c := range s.owned(ownerID) {
		if search != "" && !strings.Contains(strings.ToLower(c.FirstName+" "+c.LastName+" "+c.Email), search) {
			continue
		}
		out = append(out, c)
	}

	if filter.Skip >= len(out) {
		return []database.Contact{}, nil
	}
	out = out[filter.Skip:]

	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (s *memoryStore) ContactsByOwner(_ context.Context, ownerID int64) ([]database.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.owned(ownerID), nil
}

func (s *memoryStore) UpdateContact(_ context.Context, c database.Contact) (database.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.contacts[c.ID]
	if !ok || old.OwnerID != c.OwnerID {
		return database.Contact{}, database.ErrContactNotFound
	}

	if s.duplicate(c) {
		return database.Contact{}, database.ErrContactExists
	}

	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = time.Now()
	s.contacts[c.ID] = c

	return c, nil
}

func (s *memoryStore) DeleteContact(_ context.Context, ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return database.ErrContactNotFound
	}

	delete(s.contacts, id)

	return nil
}
