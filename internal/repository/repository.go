package repository

import (
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by (lowercased) email
	FindByEmail(email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the (lowercased) email exists
	ExistsByEmail(email string) (bool, error)
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create persists a new todo and fills in its id and created_at
	Create(todo *models.Todo) error

	// ListByCreator returns the creator's todos newest-first
	ListByCreator(createdBy string) ([]models.Todo, error)

	// FindByID finds a todo by ID
	FindByID(id uint64) (*models.Todo, error)

	// Update rewrites title, description and status of the row with the
	// given id; reports how many rows matched
	Update(id uint64, title, description string, status bool) (int64, error)

	// Delete removes the row with the given id; reports how many rows matched
	Delete(id uint64) (int64, error)
}
