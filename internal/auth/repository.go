// internal/auth/repository.go
package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cineverse/internal/users"
)

type Repository interface {
	CreateUser(ctx context.Context, user *users.User) error
	GetUserByEmail(ctx context.Context, email string) (*users.User, error)
	GetUserByID(ctx context.Context, id string) (*users.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// repository is the in-memory demo user store. Accounts live exactly as
// long as the process; email lookup is case-insensitive.
type repository struct {
	mu      sync.RWMutex
	byEmail map[string]*users.User
	byID    map[string]*users.User
}

func NewRepository() Repository {
	return &repository{
		byEmail: make(map[string]*users.User),
		byID:    make(map[string]*users.User),
	}
}

func (r *repository) CreateUser(ctx context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return ErrUserAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.byEmail[key] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (r *repository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[normalizeEmail(email)]
	return ok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
