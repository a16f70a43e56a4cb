// Package store holds the in-memory fixture data the mock API serves. The
// store is created on process start, seeded once, and discarded on shutdown;
// nothing is persisted. Relation traversal goes through the owner's handle:
// the author of a post is FindUser(post.UserID).
package store

import (
	"sync"

	"github.com/zeromock/threads-api/internal/models"
)

// Store is an explicit, constructible fixture store handed to the route
// handlers. A RWMutex guards the graph because net/http serves handlers
// concurrently.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*models.User
	userOrder  []string
	posts      map[string]*models.Post
	postOrder  []string
	activities []models.Activity
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users: make(map[string]*models.User),
		posts: make(map[string]*models.Post),
	}
}

// CreateUser adds a user. The handle must be unused.
func (s *Store) CreateUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return models.ErrUserExists
	}
	stored := u
	s.users[u.ID] = &stored
	s.userOrder = append(s.userOrder, u.ID)
	return nil
}

// CreatePost adds a post. Referential integrity is checked at creation time:
// the owning user must already exist.
func (s *Store) CreatePost(p models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.UserID]; !ok {
		return models.Post{}, models.ErrUnknownOwner
	}
	if _, ok := s.posts[p.ID]; ok {
		return models.Post{}, models.ErrPostExists
	}
	stored := p
	s.posts[p.ID] = &stored
	s.postOrder = append(s.postOrder, p.ID)
	return stored, nil
}

// CreateActivity adds an activity for an existing user.
func (s *Store) CreateActivity(a models.Activity) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[a.UserID]; !ok {
		return models.Activity{}, models.ErrUnknownOwner
	}
	s.activities = append(s.activities, a)
	return a, nil
}

// FindUser looks up a user by handle.
func (s *Store) FindUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// FindPost looks up a post by id.
func (s *Store) FindPost(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, false
	}
	return *p, true
}

// AllUsers returns every user in insertion order.
func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, *s.users[id])
	}
	return out
}

// AllPosts returns every post in insertion order.
func (s *Store) AllPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		out = append(out, *s.posts[id])
	}
	return out
}

// AllActivities returns every activity in insertion order.
func (s *Store) AllActivities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// UserPosts returns the posts authored by the given user, in insertion order.
func (s *Store) UserPosts(userID string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Post
	for _, id := range s.postOrder {
		if s.posts[id].UserID == userID {
			out = append(out, *s.posts[id])
		}
	}
	return out
}

// UpdateUser applies a mutation to an existing user and returns the result.
// The handle itself is immutable.
func (s *Store) UpdateUser(id string, apply func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	apply(u)
	u.ID = id
	return *u, nil
}

// Counts reports how many entities of each kind the store holds.
func (s *Store) Counts() (users, posts, activities int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.posts), len(s.activities)
}
