package store

import (
	"context"
	"fmt"

	"RECIPEBOOK_BACK-END/internal/models"
)

// UserRepository reads and writes user documents.
type UserRepository struct {
	docs DocumentStore
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(docs DocumentStore) *UserRepository {
	return &UserRepository{docs: docs}
}

// Create stores the user under its uid.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	if err := r.docs.Set(ctx, UsersCollection, user.UID, user); err != nil {
		return fmt.Errorf("create user %s: %w", user.UID, err)
	}
	return nil
}

// FindByUsername returns all users with exactly this username.
// The postgres store rejects duplicate usernames; other backends may not,
// so more than one may match.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	raws, err := r.docs.Where(ctx, UsersCollection, "username", username)
	if err != nil {
		return nil, fmt.Errorf("find users by username: %w", err)
	}
	users, err := decodeAll[models.User](raws)
	if err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
